package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paperdex/paperdex/internal/paper"
)

func samplePapers() []paper.Paper {
	return []paper.Paper{
		{
			ID:    "spanner-2012",
			Title: "Spanner: Google's Globally-Distributed Database",
			DOI:   "10.1145/2491245",
			Year:  2012,
			Venue: paper.Venue{Name: "OSDI", Type: "conference"},
			Authors: []paper.Author{
				{Name: "J. Corbett", Affiliations: []string{"Google"}},
			},
			Citations: 1500,
		},
		{
			ID:    "raft-2014",
			Title: "In Search of an Understandable Consensus Algorithm",
			Year:  2014,
			Venue: paper.Venue{Name: "USENIX ATC", Type: "conference"},
		},
	}
}

func TestWriteAllReadAllRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "papers.jsonl")
	want := samplePapers()

	if err := WriteAll(path, want); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}

	got, err := ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d papers, want %d", len(got), len(want))
	}
	// Order is part of the contract.
	for i := range want {
		if got[i].ID != want[i].ID {
			t.Errorf("position %d = %q, want %q", i, got[i].ID, want[i].ID)
		}
	}
	if got[0].Authors[0].Affiliations[0] != "Google" {
		t.Errorf("nested author data lost: %+v", got[0].Authors)
	}
}

func TestReadAllMissingFile(t *testing.T) {
	got, err := ReadAll(filepath.Join(t.TempDir(), "absent.jsonl"))
	if err != nil {
		t.Fatalf("ReadAll on missing file: %v", err)
	}
	if got != nil {
		t.Errorf("got %v, want nil for missing file", got)
	}
}

func TestReadAllSkipsEmptyLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "papers.jsonl")
	content := `{"id":"a","title":"One","authors":[],"venue":{"name":"V"},"citations":0}

{"id":"b","title":"Two","authors":[],"venue":{"name":"V"},"citations":0}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d papers, want 2", len(got))
	}
}

func TestReadAllMalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "papers.jsonl")
	if err := os.WriteFile(path, []byte("{not json}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadAll(path); err == nil {
		t.Error("expected error for malformed line")
	}
}

func TestAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "papers.jsonl")
	for _, p := range samplePapers() {
		if err := Append(path, p); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 2 || got[0].ID != "spanner-2012" {
		t.Errorf("unexpected collection after append: %+v", got)
	}
}

func TestWriteAllReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "papers.jsonl")
	if err := WriteAll(path, samplePapers()); err != nil {
		t.Fatal(err)
	}
	if err := WriteAll(path, samplePapers()[:1]); err != nil {
		t.Fatal(err)
	}

	got, err := ReadAll(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Errorf("got %d papers after rewrite, want 1", len(got))
	}
}

func TestBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "papers.jsonl")
	if err := WriteAll(path, samplePapers()); err != nil {
		t.Fatal(err)
	}

	backupDir := filepath.Join(dir, "backups")
	backupPath, err := Backup(path, backupDir)
	if err != nil {
		t.Fatalf("Backup: %v", err)
	}
	if backupPath == "" {
		t.Fatal("expected a backup path")
	}

	got, err := ReadAll(backupPath)
	if err != nil {
		t.Fatalf("reading backup: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("backup has %d papers, want 2", len(got))
	}
}

func TestBackupMissingSource(t *testing.T) {
	dir := t.TempDir()
	backupPath, err := Backup(filepath.Join(dir, "absent.jsonl"), filepath.Join(dir, "backups"))
	if err != nil {
		t.Fatalf("Backup: %v", err)
	}
	if backupPath != "" {
		t.Errorf("got backup path %q for missing source, want empty", backupPath)
	}
}
