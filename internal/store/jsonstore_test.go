package store

import (
	"testing"
)

func TestWriteRead(t *testing.T) {
	st := NewJSONStore(t.TempDir())

	in := map[string]int{"a": 1, "b": 2}
	if err := st.Write("nested/dir/file.json", in); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !st.Exists("nested/dir/file.json") {
		t.Fatal("Exists = false after Write")
	}

	var out map[string]int
	if err := st.Read("nested/dir/file.json", &out); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if out["a"] != 1 || out["b"] != 2 {
		t.Errorf("Read = %v, want %v", out, in)
	}
}

func TestRead_MissingFile(t *testing.T) {
	st := NewJSONStore(t.TempDir())

	var out map[string]int
	err := st.Read("nope.json", &out)
	if err == nil {
		t.Fatal("Read missing file: error = nil")
	}
	if !IsNotExist(err) {
		t.Errorf("IsNotExist = false for %v", err)
	}
}
