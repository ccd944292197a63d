package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mindmatehq/mindmate/internal/models"
)

const exportDateLayout = "2006-01-02 15:04:05"

var ExportCSVHeaders = []string{
	"Type",
	"Date",
	"Value",
	"Completed",
	"Detail",
	"Notes",
}

type ExportCheckInReader interface {
	ListCheckInsByUser(userID string) ([]models.HabitCheckIn, error)
}

type ExportEntryReader interface {
	ListMoodByUser(userID string) ([]models.MoodEntry, error)
	ListStressByUser(userID string) ([]models.StressEntry, error)
	ListProductivityByUser(userID string) ([]models.ProductivityEntry, error)
}

type ExportService struct {
	checkIns ExportCheckInReader
	entries  ExportEntryReader
}

func NewExportService(checkIns ExportCheckInReader, entries ExportEntryReader) *ExportService {
	return &ExportService{checkIns: checkIns, entries: entries}
}

// ExportData is the caller's complete wellness history: every stored
// check-in and metric entry, nothing belonging to anyone else.
type ExportData struct {
	UserID              string                     `json:"user_id"`
	GeneratedAt         time.Time                  `json:"generated_at"`
	HabitCheckIns       []models.HabitCheckIn      `json:"habit_check_ins"`
	MoodEntries         []models.MoodEntry         `json:"mood_entries"`
	StressEntries       []models.StressEntry       `json:"stress_entries"`
	ProductivityEntries []models.ProductivityEntry `json:"productivity_entries"`
}

func (service *ExportService) BuildExport(userID string) (ExportData, error) {
	checkIns, err := service.checkIns.ListCheckInsByUser(userID)
	if err != nil {
		return ExportData{}, fmt.Errorf("load check-ins: %w", err)
	}
	moods, err := service.entries.ListMoodByUser(userID)
	if err != nil {
		return ExportData{}, fmt.Errorf("load mood entries: %w", err)
	}
	stresses, err := service.entries.ListStressByUser(userID)
	if err != nil {
		return ExportData{}, fmt.Errorf("load stress entries: %w", err)
	}
	productivity, err := service.entries.ListProductivityByUser(userID)
	if err != nil {
		return ExportData{}, fmt.Errorf("load productivity entries: %w", err)
	}

	return ExportData{
		UserID:              userID,
		GeneratedAt:         time.Now(),
		HabitCheckIns:       checkIns,
		MoodEntries:         moods,
		StressEntries:       stresses,
		ProductivityEntries: productivity,
	}, nil
}

// BuildCSVRows flattens the export into one row per record under the
// shared header set.
func BuildCSVRows(data ExportData) [][]string {
	rows := make([][]string, 0,
		len(data.HabitCheckIns)+len(data.MoodEntries)+len(data.StressEntries)+len(data.ProductivityEntries))

	for _, checkIn := range data.HabitCheckIns {
		rows = append(rows, []string{
			"habit_check_in",
			checkIn.Date.Format(exportDateLayout),
			"",
			csvYesNo(checkIn.Completed),
			checkIn.HabitID,
			csvNotes(checkIn.Notes),
		})
	}
	for _, entry := range data.MoodEntries {
		rows = append(rows, []string{
			"mood",
			entry.Date.Format(exportDateLayout),
			strconv.Itoa(entry.MoodLevel),
			"",
			"",
			csvNotes(entry.Notes),
		})
	}
	for _, entry := range data.StressEntries {
		detail := strings.Join(entry.Triggers, "; ")
		if len(entry.CopingStrategies) > 0 {
			if detail != "" {
				detail += " | "
			}
			detail += strings.Join(entry.CopingStrategies, "; ")
		}
		rows = append(rows, []string{
			"stress",
			entry.Date.Format(exportDateLayout),
			strconv.Itoa(entry.StressLevel),
			"",
			detail,
			csvNotes(entry.Notes),
		})
	}
	for _, entry := range data.ProductivityEntries {
		rows = append(rows, []string{
			"productivity",
			entry.Date.Format(exportDateLayout),
			strconv.Itoa(entry.ProductivityScore),
			"",
			fmt.Sprintf("tasks=%d focus_minutes=%d", entry.TasksCompleted, entry.FocusTimeMinutes),
			csvNotes(entry.Notes),
		})
	}

	return rows
}

func csvYesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func csvNotes(notes *string) string {
	if notes == nil {
		return ""
	}
	return *notes
}
