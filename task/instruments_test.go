package task

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestInstruments(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"SH600001.csv", "SZ000001.csv"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("date\n"), 0666); err != nil {
			t.Fatal(err)
		}
	}
	//旧的列表会被覆盖,目录和非csv文件会被跳过
	if err := os.WriteFile(filepath.Join(dir, InstrumentsFilename), []byte("OLD\n"), 0666); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "backup"), 0777); err != nil {
		t.Fatal(err)
	}

	if err := NewInstruments(dir).Run(context.Background(), nil); err != nil {
		t.Fatal(err)
	}

	bs, err := os.ReadFile(filepath.Join(dir, InstrumentsFilename))
	if err != nil {
		t.Fatal(err)
	}
	if string(bs) != "SH600001\nSZ000001\n" {
		t.Errorf("内容 = %q", string(bs))
	}
}
