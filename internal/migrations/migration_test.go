package migrations

import (
	"testing"
)

type fakeOps struct {
	tables  map[string]bool
	columns map[string]int
}

func newFakeOps() *fakeOps {
	return &fakeOps{tables: make(map[string]bool), columns: make(map[string]int)}
}

func (f *fakeOps) AutoMigrate(dst ...interface{}) error {
	for range dst {
		f.tables["migrated"] = true
	}
	return nil
}

func (f *fakeOps) HasColumn(dst interface{}, field string) bool {
	return f.columns[field] > 0
}

func (f *fakeOps) AddColumn(dst interface{}, field string) error {
	f.columns[field]++
	return nil
}

type fakeRecorder struct {
	applied map[string]bool
}

func (r *fakeRecorder) Applied(version string) (bool, error) {
	return r.applied[version], nil
}

func (r *fakeRecorder) Record(version string) error {
	r.applied[version] = true
	return nil
}

func TestApplyRecordsEveryMigrationOnce(t *testing.T) {
	ops := newFakeOps()
	rec := &fakeRecorder{applied: make(map[string]bool)}

	if err := Apply(All(), ops, rec); err != nil {
		t.Fatalf("first Apply returned error: %v", err)
	}
	for _, m := range All() {
		if !rec.applied[m.Version] {
			t.Fatalf("migration %s not recorded", m.Version)
		}
	}
}

func TestApplyTwiceIsIdempotent(t *testing.T) {
	ops := newFakeOps()
	rec := &fakeRecorder{applied: make(map[string]bool)}

	if err := Apply(All(), ops, rec); err != nil {
		t.Fatalf("first Apply returned error: %v", err)
	}
	if err := Apply(All(), ops, rec); err != nil {
		t.Fatalf("second Apply returned error: %v", err)
	}

	for field, count := range ops.columns {
		if count > 1 {
			t.Fatalf("column %s added %d times", field, count)
		}
	}
}

func TestEnsureColumnSkipsExisting(t *testing.T) {
	ops := newFakeOps()
	ops.columns["category"] = 1

	rec := &fakeRecorder{applied: make(map[string]bool)}
	if err := Apply(All(), ops, rec); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if ops.columns["category"] != 1 {
		t.Fatalf("existing category column re-added, count %d", ops.columns["category"])
	}
}
