// Package ocr turns uploaded OD evidence files into plain text.
//
// Extraction is fail-soft by contract: a broken upload degrades to a
// diagnostic string the verifier scores as insufficient evidence, never to an
// error that aborts the submission pipeline.
package ocr

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Kind tags the declared upload type.
type Kind string

const (
	KindImage Kind = "image"
	KindPDF   Kind = "pdf"
)

// KindForExtension maps an upload extension (without dot) to its Kind.
func KindForExtension(ext string) Kind {
	if strings.EqualFold(ext, "pdf") {
		return KindPDF
	}
	return KindImage
}

// errPrefix marks a diagnostic result. The verifier treats such text like any
// other low-evidence input.
const errPrefix = "OCR Error: "

// Extractor produces a best-effort transcription of an evidence file.
type Extractor struct {
	engine   Engine
	renderer PageRenderer
	workDir  string
	logger   *zap.Logger
}

// NewExtractor wires an Extractor from its recognition collaborators.
func NewExtractor(engine Engine, renderer PageRenderer, workDir string, logger *zap.Logger) *Extractor {
	return &Extractor{
		engine:   engine,
		renderer: renderer,
		workDir:  workDir,
		logger:   logger,
	}
}

// Extract returns the concatenated text of the file. It never fails: any
// recognition problem is folded into the returned string as a diagnostic.
func (e *Extractor) Extract(ctx context.Context, path string, kind Kind) string {
	var (
		text string
		err  error
	)
	if kind == KindPDF {
		text, err = e.extractPDF(ctx, path)
	} else {
		text, err = e.engine.Recognize(ctx, path)
	}
	if err != nil {
		e.logger.Warn("text extraction failed",
			zap.String("path", path),
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
		return errPrefix + err.Error()
	}
	return strings.TrimSpace(text)
}

// extractPDF renders each page and recognizes them independently. A page that
// fails recognition is skipped so the remaining pages still contribute.
func (e *Extractor) extractPDF(ctx context.Context, path string) (string, error) {
	dir, err := tempPageDir(e.workDir)
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(dir)

	pages, err := e.renderer.RenderPages(ctx, path, dir)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, page := range pages {
		pageText, err := e.engine.Recognize(ctx, page)
		if err != nil {
			e.logger.Warn("page recognition failed, skipping page",
				zap.String("page", page),
				zap.Error(err),
			)
			continue
		}
		sb.WriteString(pageText)
	}
	return sb.String(), nil
}
