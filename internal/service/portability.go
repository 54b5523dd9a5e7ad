package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/saadjs/kcal-tui/internal/calendar"
	"github.com/saadjs/kcal-tui/internal/model"
	"github.com/saadjs/kcal-tui/internal/store"
)

const exportVersion = 1

type ExportGoals struct {
	Calories int `json:"calories"`
	Carbs    int `json:"carbs"`
	Protein  int `json:"protein"`
	Fat      int `json:"fat"`
}

type ExportFood struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	Carbs    int    `json:"carbs"`
	Protein  int    `json:"protein"`
	Fat      int    `json:"fat"`
	Grams    int    `json:"grams"`
}

type ExportRecord struct {
	Date  string       `json:"date"`
	Foods []ExportFood `json:"foods"`
}

type ExportData struct {
	Version    int            `json:"version"`
	ExportedAt string         `json:"exported_at"`
	Goals      *ExportGoals   `json:"goals,omitempty"`
	Records    []ExportRecord `json:"records"`
}

type ImportMode string

const (
	ImportModeFail    ImportMode = "fail"
	ImportModeSkip    ImportMode = "skip"
	ImportModeMerge   ImportMode = "merge"
	ImportModeReplace ImportMode = "replace"
)

type ImportOptions struct {
	Mode   ImportMode
	DryRun bool
}

type ImportReport struct {
	Inserted  int      `json:"inserted"`
	Updated   int      `json:"updated"`
	Skipped   int      `json:"skipped"`
	Conflicts int      `json:"conflicts"`
	Warnings  []string `json:"warnings,omitempty"`
}

func ExportDataSnapshot(snap store.Snapshot) *ExportData {
	g := snap.Goals
	out := &ExportData{
		Version:    exportVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Goals:      &ExportGoals{Calories: g.Calories, Carbs: g.Carbs, Protein: g.Protein, Fat: g.Fat},
		Records:    make([]ExportRecord, 0, len(snap.Records)),
	}
	for _, r := range snap.Records {
		rec := ExportRecord{Date: r.Date.ISO(), Foods: make([]ExportFood, 0, len(r.Foods))}
		for _, f := range r.Foods {
			rec.Foods = append(rec.Foods, ExportFood(f))
		}
		out.Records = append(out.Records, rec)
	}
	return out
}

// SnapshotFromExport converts an export payload back into records. Goals
// fall back to the defaults when the payload has none.
func SnapshotFromExport(data *ExportData) (store.Snapshot, error) {
	snap := store.Snapshot{Goals: model.DefaultGoals}
	if data.Goals != nil {
		snap.Goals = model.Goals{Calories: data.Goals.Calories, Carbs: data.Goals.Carbs, Protein: data.Goals.Protein, Fat: data.Goals.Fat}
	}
	for i, r := range data.Records {
		d, err := calendar.Parse(r.Date)
		if err != nil {
			return store.Snapshot{}, fmt.Errorf("record %d: %w", i+1, err)
		}
		rec := &model.DailyRecord{Date: d}
		for _, f := range r.Foods {
			f.Name = model.TruncateName(f.Name)
			rec.Append(model.FoodEntry(f))
		}
		snap.Records = append(snap.Records, rec)
	}
	return snap, nil
}

func normalizeImportMode(m ImportMode) ImportMode {
	switch m {
	case ImportModeFail, ImportModeSkip, ImportModeReplace:
		return m
	default:
		return ImportModeMerge
	}
}

// ImportSnapshot folds incoming into the manager according to opts.Mode:
// fail stops on the first date that already has a record, skip keeps the
// existing day, merge appends to the day's foods and replace discards
// everything first. Nothing is saved; with DryRun the manager is untouched.
func ImportSnapshot(m *store.Manager, incoming store.Snapshot, hasGoals bool, opts ImportOptions) (ImportReport, error) {
	report := ImportReport{}
	mode := normalizeImportMode(opts.Mode)

	work := m.Snapshot()
	if mode == ImportModeReplace {
		work.Records = nil
	}
	index := map[calendar.Date]*model.DailyRecord{}
	for _, r := range work.Records {
		index[r.Date] = r
	}

	for _, r := range incoming.Records {
		existing, ok := index[r.Date]
		if !ok {
			rec := &model.DailyRecord{Date: r.Date, Foods: r.Foods}
			work.Records = append(work.Records, rec)
			index[r.Date] = rec
			report.Inserted++
			continue
		}
		switch mode {
		case ImportModeFail:
			report.Conflicts++
			return report, fmt.Errorf("import conflict for date %s", r.Date)
		case ImportModeSkip:
			report.Skipped++
		default:
			existing.Foods = slices.Concat(existing.Foods, r.Foods)
			report.Updated++
		}
	}

	if hasGoals && mode != ImportModeSkip {
		work.Goals = incoming.Goals
	} else if !hasGoals {
		report.Warnings = append(report.Warnings, "import has no goals; keeping current goals")
	}

	if !opts.DryRun {
		m.Replace(work)
	}
	return report, nil
}

var csvHeader = []string{"date", "name", "calories", "carbs", "protein", "fat", "grams"}

// WriteCSV writes one row per food entry. Days without food are omitted.
func WriteCSV(w io.Writer, snap store.Snapshot) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write export csv header: %w", err)
	}
	for _, r := range snap.Records {
		for _, f := range r.Foods {
			row := []string{
				r.Date.ISO(),
				f.Name,
				strconv.Itoa(f.Calories),
				strconv.Itoa(f.Carbs),
				strconv.Itoa(f.Protein),
				strconv.Itoa(f.Fat),
				strconv.Itoa(f.Grams),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write export csv row: %w", err)
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush export csv: %w", err)
	}
	return nil
}

// ReadCSV parses rows written by WriteCSV. CSV carries no goals.
func ReadCSV(r io.Reader) (store.Snapshot, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return store.Snapshot{}, fmt.Errorf("read import csv: %w", err)
	}
	if len(records) <= 1 {
		return store.Snapshot{}, errors.New("import csv contains no data rows")
	}
	snap := store.Snapshot{Goals: model.DefaultGoals}
	index := map[calendar.Date]*model.DailyRecord{}
	for i := 1; i < len(records); i++ {
		row := records[i]
		if len(row) != len(csvHeader) {
			return store.Snapshot{}, fmt.Errorf("csv row %d has %d columns, expected %d", i+1, len(row), len(csvHeader))
		}
		d, err := calendar.Parse(row[0])
		if err != nil {
			return store.Snapshot{}, fmt.Errorf("csv row %d date: %w", i+1, err)
		}
		nums := make([]int, 5)
		for j := range nums {
			v, err := strconv.Atoi(strings.TrimSpace(row[2+j]))
			if err != nil {
				return store.Snapshot{}, fmt.Errorf("csv row %d %s: invalid number %q", i+1, csvHeader[2+j], row[2+j])
			}
			nums[j] = v
		}
		rec, ok := index[d]
		if !ok {
			rec = &model.DailyRecord{Date: d}
			index[d] = rec
			snap.Records = append(snap.Records, rec)
		}
		rec.Append(model.FoodEntry{
			Name:     model.TruncateName(row[1]),
			Calories: nums[0],
			Carbs:    nums[1],
			Protein:  nums[2],
			Fat:      nums[3],
			Grams:    nums[4],
		})
	}
	return snap, nil
}
