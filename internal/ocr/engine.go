package ocr

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Engine recognizes the text in a single image file.
type Engine interface {
	Recognize(ctx context.Context, imagePath string) (string, error)
}

// PageRenderer renders a multi-page document into per-page image files,
// returned in page order.
type PageRenderer interface {
	RenderPages(ctx context.Context, pdfPath, destDir string) ([]string, error)
}

// ── production implementations ──

// TesseractEngine runs recognition through gosseract.
type TesseractEngine struct {
	Language string
}

// NewTesseractEngine creates an engine for the given language ("eng" default).
func NewTesseractEngine(language string) *TesseractEngine {
	if language == "" {
		language = "eng"
	}
	return &TesseractEngine{Language: language}
}

// Recognize OCRs one image. A fresh client per call keeps the engine stateless.
func (e *TesseractEngine) Recognize(_ context.Context, imagePath string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(e.Language); err != nil {
		return "", fmt.Errorf("set language: %w", err)
	}
	if err := client.SetImage(imagePath); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	text, err := client.Text()
	if err != nil {
		return "", err
	}
	return text, nil
}

// PopplerRenderer renders PDF pages to PNG via the pdftoppm binary.
type PopplerRenderer struct {
	Binary string
}

// NewPopplerRenderer creates a renderer; binary defaults to "pdftoppm" on PATH.
func NewPopplerRenderer(binary string) *PopplerRenderer {
	if binary == "" {
		binary = "pdftoppm"
	}
	return &PopplerRenderer{Binary: binary}
}

// RenderPages runs `pdftoppm -png <pdf> <prefix>` and globs the output.
// pdftoppm numbers pages with a fixed-width suffix, so a lexical sort of the
// matches preserves page order.
func (r *PopplerRenderer) RenderPages(ctx context.Context, pdfPath, destDir string) ([]string, error) {
	prefix := filepath.Join(destDir, "page")

	cmd := exec.CommandContext(ctx, r.Binary, "-png", pdfPath, prefix)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("pdftoppm: %w: %s", err, strings.TrimSpace(string(out)))
	}

	matches, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("pdftoppm produced no pages for %s", filepath.Base(pdfPath))
	}
	sort.Strings(matches)
	return matches, nil
}

// tempPageDir creates a scratch directory for rendered pages.
func tempPageDir(workDir string) (string, error) {
	if workDir == "" {
		workDir = os.TempDir()
	}
	return os.MkdirTemp(workDir, "odpages-")
}
