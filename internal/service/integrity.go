package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/saadjs/kcal-tui/internal/calendar"
	"github.com/saadjs/kcal-tui/internal/model"
	"github.com/saadjs/kcal-tui/internal/store"
)

type BackupInfo struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	CreatedAt time.Time `json:"created_at"`
	SizeBytes int64     `json:"size_bytes"`
}

type DoctorReport struct {
	NegativeValues int `json:"negative_values"`
	LongNames      int `json:"long_names"`
	DuplicateDates int `json:"duplicate_dates"`
	InvalidDates   int `json:"invalid_dates"`
	FixedRows      int `json:"fixed_rows,omitempty"`
}

func (r DoctorReport) Issues() int {
	return r.NegativeValues + r.LongNames + r.DuplicateDates + r.InvalidDates
}

// CreateBackup copies the data file at srcPath to outPath and writes a
// sha256 checksum next to it.
func CreateBackup(srcPath, outPath string) (BackupInfo, error) {
	switch {
	case strings.TrimSpace(srcPath) == "":
		return BackupInfo{}, fmt.Errorf("source path is required")
	case strings.TrimSpace(outPath) == "":
		return BackupInfo{}, fmt.Errorf("backup output path is required")
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return BackupInfo{}, fmt.Errorf("create backup directory: %w", err)
	}
	sum, err := copyAndHash(srcPath, outPath)
	if err != nil {
		return BackupInfo{}, err
	}
	if err := os.WriteFile(checksumPath(outPath), []byte(sum+"\n"), 0o644); err != nil {
		return BackupInfo{}, fmt.Errorf("write checksum file: %w", err)
	}
	info, err := describeBackup(outPath)
	if err != nil {
		return BackupInfo{}, err
	}
	info.Checksum = sum
	return info, nil
}

// RestoreBackup copies the backup over dstPath. When a checksum file sits
// next to the backup the copied bytes must match it, otherwise the partial
// target is removed.
func RestoreBackup(backupPath, dstPath string, force bool) error {
	if strings.TrimSpace(backupPath) == "" || strings.TrimSpace(dstPath) == "" {
		return fmt.Errorf("backup path and target path are required")
	}
	if _, err := os.Stat(dstPath); err == nil && !force {
		return fmt.Errorf("target %s already exists; use --force to overwrite", dstPath)
	}
	want := readChecksum(backupPath)
	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("create target directory: %w", err)
	}
	tmp := dstPath + ".restore"
	got, err := copyAndHash(backupPath, tmp)
	if err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if want != "" && want != got {
		_ = os.Remove(tmp)
		return fmt.Errorf("backup checksum mismatch")
	}
	if err := os.Rename(tmp, dstPath); err != nil {
		return fmt.Errorf("replace %s: %w", dstPath, err)
	}
	return nil
}

// ListBackups returns the backups in dir with extension ext, newest first.
func ListBackups(dir, ext string) ([]BackupInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read backup dir: %w", err)
	}
	var out []BackupInfo
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ext {
			continue
		}
		info, err := describeBackup(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		out = append(out, info)
	}
	slices.SortFunc(out, func(a, b BackupInfo) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

// RunDoctor checks the loaded records. With fix it clamps negative values
// to 0, truncates long names, folds duplicate dates into the first record
// and drops records with impossible dates; the caller saves the result.
func RunDoctor(m *store.Manager, fix bool) DoctorReport {
	report := DoctorReport{}
	snap := m.Snapshot()

	g := snap.Goals
	for _, v := range []*int{&g.Calories, &g.Carbs, &g.Protein, &g.Fat} {
		if *v < 0 {
			report.NegativeValues++
			*v = 0
		}
	}

	seen := map[calendar.Date]*model.DailyRecord{}
	kept := make([]*model.DailyRecord, 0, len(snap.Records))
	for _, r := range snap.Records {
		if !r.Date.Valid() {
			report.InvalidDates++
			continue
		}
		for i := range r.Foods {
			f := &r.Foods[i]
			for _, v := range []*int{&f.Calories, &f.Carbs, &f.Protein, &f.Fat, &f.Grams} {
				if *v < 0 {
					report.NegativeValues++
					*v = 0
				}
			}
			if utf8.RuneCountInString(f.Name) > model.MaxNameLen {
				report.LongNames++
				f.Name = model.TruncateName(f.Name)
			}
		}
		if first, ok := seen[r.Date]; ok {
			report.DuplicateDates++
			first.Foods = append(first.Foods, r.Foods...)
			continue
		}
		seen[r.Date] = r
		kept = append(kept, r)
	}

	if fix && report.Issues() > 0 {
		report.FixedRows = report.Issues()
		m.Replace(store.Snapshot{Goals: g, Records: kept})
	}
	return report
}

func checksumPath(path string) string { return path + ".sha256" }

func readChecksum(path string) string {
	b, err := os.ReadFile(checksumPath(path))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

func describeBackup(path string) (BackupInfo, error) {
	st, err := os.Stat(path)
	if err != nil {
		return BackupInfo{}, fmt.Errorf("stat backup: %w", err)
	}
	return BackupInfo{
		Path:      path,
		Checksum:  readChecksum(path),
		CreatedAt: st.ModTime(),
		SizeBytes: st.Size(),
	}, nil
}

// copyAndHash copies src to dst and returns the hex sha256 of the bytes
// written.
func copyAndHash(src, dst string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("open source file: %w", err)
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create destination file: %w", err)
	}
	h := sha256.New()
	if _, err := io.Copy(io.MultiWriter(out, h), in); err != nil {
		out.Close()
		return "", fmt.Errorf("copy file: %w", err)
	}
	if err := out.Sync(); err != nil {
		out.Close()
		return "", fmt.Errorf("sync destination file: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("close destination file: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
