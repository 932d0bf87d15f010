package lexical

import (
	"archive/zip"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"testing/fstest"

	"ttsfront/internal/pkg/ttsfront/asset"
	"ttsfront/internal/pkg/ttsfront/frontend"
	"ttsfront/internal/pkg/ttsfront/lexicon"
)

const testTokens = " 9\n. 7\n, 8\nh 1\nay 2\nf 3\nao 4\nr 5\nt 6\nuw 10\n"

const testLexicon = "hi h ay\nfour f ao r\ntwo t uw\n"

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"tokens.txt":  {Data: []byte(testTokens)},
		"lexicon.txt": {Data: []byte(testLexicon)},
		"alt/tok.txt": {Data: []byte(testTokens)},
		"alt/lex.txt": {Data: []byte("hi h ay\n")},
	}
}

func TestLoad(t *testing.T) {
	f, err := Load(asset.FS{FS: testFS()}, frontend.Config{Language: "english", Punctuations: ". ,"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	ids, err := f.ConvertTextToTokenIds("hi, four")
	if err != nil {
		t.Fatalf("ConvertTextToTokenIds: %v", err)
	}
	if want := []int64{1, 2, 9, 8, 3, 4, 5}; !reflect.DeepEqual(ids, want) {
		t.Errorf("ids = %v; want %v", ids, want)
	}

	info := f.Info()
	want := frontend.Info{Name: Name, Language: "english", NumTokens: 10, NumWords: 3, NumPunctuations: 2}
	if info != want {
		t.Errorf("Info = %+v; want %+v", info, want)
	}
	if f.Lexicon().Language() != lexicon.English {
		t.Errorf("Lexicon().Language() = %v", f.Lexicon().Language())
	}
}

func TestLoad_CustomNames(t *testing.T) {
	f, err := Load(asset.FS{FS: testFS()}, frontend.Config{
		Language:    "english",
		TokensName:  "alt/tok.txt",
		LexiconName: "alt/lex.txt",
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.Info().NumWords != 1 {
		t.Errorf("NumWords = %d; want 1", f.Info().NumWords)
	}
}

func TestLoad_Normalize(t *testing.T) {
	cfg := frontend.Config{Language: "english", Punctuations: ". ,"}

	plain, err := Load(asset.FS{FS: testFS()}, cfg)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	ids, err := plain.ConvertTextToTokenIds("hi 4")
	if err != nil {
		t.Fatal(err)
	}
	if want := []int64{1, 2}; !reflect.DeepEqual(ids, want) {
		t.Errorf("without normalize ids = %v; want %v", ids, want)
	}

	cfg.Normalize = true
	normalized, err := Load(asset.FS{FS: testFS()}, cfg)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	ids, err = normalized.ConvertTextToTokenIds("hi 4")
	if err != nil {
		t.Fatal(err)
	}
	if want := []int64{1, 2, 9, 3, 4, 5}; !reflect.DeepEqual(ids, want) {
		t.Errorf("with normalize ids = %v; want %v", ids, want)
	}
}

func TestLoad_MissingAssets(t *testing.T) {
	tests := []struct {
		name string
		cfg  frontend.Config
	}{
		{name: "tokens", cfg: frontend.Config{Language: "english", TokensName: "nope.txt"}},
		{name: "lexicon", cfg: frontend.Config{Language: "english", LexiconName: "nope.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(asset.FS{FS: testFS()}, tt.cfg)
			if !errors.Is(err, fs.ErrNotExist) {
				t.Fatalf("err = %v; want fs.ErrNotExist", err)
			}
		})
	}
}

func TestLoad_BadLanguage(t *testing.T) {
	_, err := Load(asset.FS{FS: testFS()}, frontend.Config{Language: "french"})
	if !errors.Is(err, lexicon.ErrUnknownLanguage) {
		t.Fatalf("err = %v; want ErrUnknownLanguage", err)
	}
}

func TestRegistered(t *testing.T) {
	if !frontend.IsRegistered(Name) {
		t.Fatalf("%q not registered", Name)
	}
}

func TestNewFrontend_Directory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "tokens.txt"), "sil 0\neos 1\nn 2\ni3 3\n")
	writeFile(t, filepath.Join(dir, "lexicon.txt"), "你 n i3\n")

	fe, err := frontend.New(Name, frontend.Config{AssetPath: dir, Language: "chinese", Punctuations: "，"})
	if err != nil {
		t.Fatalf("frontend.New: %v", err)
	}

	ids, err := fe.ConvertTextToTokenIds("你，你")
	if err != nil {
		t.Fatal(err)
	}
	if want := []int64{0, 2, 3, 0, 2, 3, 0, 1}; !reflect.DeepEqual(ids, want) {
		t.Errorf("ids = %v; want %v", ids, want)
	}
}

func TestNewFrontend_Bundle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.zip")
	out, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(out)
	for name, content := range map[string]string{
		"vits-en/tokens.txt":  testTokens,
		"vits-en/lexicon.txt": testLexicon,
	} {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := out.Close(); err != nil {
		t.Fatal(err)
	}

	fe, err := NewFrontend(frontend.Config{AssetPath: path, Language: "english"})
	if err != nil {
		t.Fatalf("NewFrontend: %v", err)
	}

	ids, err := fe.ConvertTextToTokenIds("two")
	if err != nil {
		t.Fatal(err)
	}
	if want := []int64{6, 10}; !reflect.DeepEqual(ids, want) {
		t.Errorf("ids = %v; want %v", ids, want)
	}
}

func TestNewFrontend_MissingPath(t *testing.T) {
	if _, err := NewFrontend(frontend.Config{AssetPath: filepath.Join(t.TempDir(), "missing"), Language: "english"}); err == nil {
		t.Fatal("expected error")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
