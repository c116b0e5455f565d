package assessgen

import (
	"context"
	"fmt"

	"github.com/FHQ-Lab/Buatsoalujian-ai/internal/assessment"
	"github.com/FHQ-Lab/Buatsoalujian-ai/internal/llm"
)

// Source is the material the assessment is generated from. Exactly one of
// Text or PDF should be set; when both are present the PDF wins and the
// text is ignored.
type Source struct {
	// Text is the raw source material pasted or read from a text file.
	Text string

	// PDF is the raw bytes of a PDF document. Sent to the provider as an
	// inline attachment; only providers with native file input accept it.
	PDF []byte

	// PDFName is the display name for the attached PDF.
	PDFName string
}

// Generator produces a complete assessment from source material in a
// single structured LLM call.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// Generate runs one LLM call and returns the decoded, validated assessment.
func (g *Generator) Generate(ctx context.Context, src Source) (*assessment.Assessment, error) {
	if err := g.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generation config: %w", err)
	}
	if src.Text == "" && src.PDF == nil {
		return nil, fmt.Errorf("no source material: provide text or a PDF")
	}

	ctx = llm.WithPurpose(ctx, "assessment-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(g.config, src)},
		},
		Schema:      AssessmentSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	if src.PDF != nil {
		name := src.PDFName
		if name == "" {
			name = "materi.pdf"
		}
		req.Files = []llm.File{{
			Name:     name,
			MIMEType: "application/pdf",
			Data:     src.PDF,
		}}
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	a, err := assessment.Decode(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("invalid generated assessment: %w", err)
	}

	return a, nil
}
