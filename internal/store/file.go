package store

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/saadjs/kcal-tui/internal/calendar"
	"github.com/saadjs/kcal-tui/internal/model"
)

// Line prefixes of the flat data file.
const (
	goalsPrefix = "DAILY_GOALS:"
	datePrefix  = "DATE:"
	foodPrefix  = "FOOD:"
)

// FileBackend stores everything in one line-oriented text file:
//
//	DAILY_GOALS: 2000,250,150,70
//	DATE: 05/03/2024
//	FOOD: Egg|70|1|6|5|50
type FileBackend struct {
	path string
}

func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

func (b *FileBackend) Path() string { return b.path }

func (b *FileBackend) Load(context.Context) (Snapshot, bool, error) {
	f, err := os.Open(b.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Snapshot{Goals: model.DefaultGoals}, true, nil
	}
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()
	snap, err := DecodeText(f)
	if err != nil {
		return Snapshot{}, false, err
	}
	return snap, false, nil
}

// Save writes to a temporary file next to path and renames it into place.
func (b *FileBackend) Save(_ context.Context, snap Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	var buf bytes.Buffer
	if err := EncodeText(&buf, snap); err != nil {
		return err
	}
	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}
	if err := os.Rename(tmp, b.path); err != nil {
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}

// DecodeText parses the flat text format. A missing goals line leaves the
// defaults; malformed numbers read as 0; FOOD lines before any DATE line
// and DATE lines with an unreadable date are skipped.
func DecodeText(r io.Reader) (Snapshot, error) {
	snap := Snapshot{Goals: model.DefaultGoals}
	index := map[calendar.Date]*model.DailyRecord{}
	var current *model.DailyRecord

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		switch {
		case strings.HasPrefix(line, goalsPrefix):
			v := splitInts(strings.TrimPrefix(line, goalsPrefix), ",", 4)
			snap.Goals = model.Goals{Calories: v[0], Carbs: v[1], Protein: v[2], Fat: v[3]}
		case strings.HasPrefix(line, datePrefix):
			d, err := calendar.Parse(strings.TrimPrefix(line, datePrefix))
			if err != nil {
				current = nil
				continue
			}
			if r, ok := index[d]; ok {
				current = r
				continue
			}
			current = &model.DailyRecord{Date: d}
			index[d] = current
			snap.Records = append(snap.Records, current)
		case strings.HasPrefix(line, foodPrefix):
			if current == nil {
				continue
			}
			rest := strings.TrimPrefix(line, foodPrefix)
			name, nums, _ := strings.Cut(rest, "|")
			v := splitInts(nums, "|", 5)
			current.Append(model.FoodEntry{
				Name:     strings.TrimSpace(name),
				Calories: v[0],
				Carbs:    v[1],
				Protein:  v[2],
				Fat:      v[3],
				Grams:    v[4],
			})
		}
	}
	if err := sc.Err(); err != nil {
		return Snapshot{}, fmt.Errorf("read data file: %w", err)
	}
	return snap, nil
}

func EncodeText(w io.Writer, snap Snapshot) error {
	bw := bufio.NewWriter(w)
	g := snap.Goals
	fmt.Fprintf(bw, "%s %d,%d,%d,%d\n", goalsPrefix, g.Calories, g.Carbs, g.Protein, g.Fat)
	for _, r := range snap.Records {
		fmt.Fprintf(bw, "%s %s\n", datePrefix, r.Date)
		for _, f := range r.Foods {
			fmt.Fprintf(bw, "%s %s|%d|%d|%d|%d|%d\n", foodPrefix, sanitizeName(f.Name),
				f.Calories, f.Carbs, f.Protein, f.Fat, f.Grams)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}
	return nil
}

// sanitizeName keeps a name on one line and out of the field separator.
func sanitizeName(s string) string {
	return strings.NewReplacer("|", "/", "\n", " ", "\r", " ").Replace(s)
}

func splitInts(s, sep string, n int) []int {
	out := make([]int, n)
	parts := strings.Split(s, sep)
	for i := 0; i < n && i < len(parts); i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err == nil {
			out[i] = v
		}
	}
	return out
}
