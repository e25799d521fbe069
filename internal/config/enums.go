package config

import (
	"github.com/lqr-hy/docs/internal/foundation/normalization"
)

// GeneratorKind selects which site generator generation the output targets.
type GeneratorKind string

const (
	GeneratorVitePress GeneratorKind = "vitepress"
	GeneratorVuePress  GeneratorKind = "vuepress"
)

var generatorNormalizer = normalization.NewNormalizer(map[string]GeneratorKind{
	"vitepress": GeneratorVitePress,
	"vuepress":  GeneratorVuePress,
}, GeneratorVitePress)

// NormalizeGenerator returns the canonical generator kind or an error for unknown input.
func NormalizeGenerator(raw string) (GeneratorKind, error) {
	return generatorNormalizer.NormalizeWithError(raw)
}

// TitleMode selects how page and directory display text is resolved.
type TitleMode string

const (
	TitlesFilename    TitleMode = "filename"
	TitlesFrontmatter TitleMode = "frontmatter"
	TitlesHeading     TitleMode = "heading"
)

var titleModeNormalizer = normalization.NewNormalizer(map[string]TitleMode{
	"filename":    TitlesFilename,
	"frontmatter": TitlesFrontmatter,
	"heading":     TitlesHeading,
}, TitlesFilename)

func NormalizeTitleMode(raw string) (TitleMode, error) {
	return titleModeNormalizer.NormalizeWithError(raw)
}

// OutputFormat is the encoding of the generated site config.
type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

var outputFormatNormalizer = normalization.NewNormalizer(map[string]OutputFormat{
	"json": FormatJSON,
	"yaml": FormatYAML,
	"yml":  FormatYAML,
}, FormatJSON)

func NormalizeOutputFormat(raw string) (OutputFormat, error) {
	return outputFormatNormalizer.NormalizeWithError(raw)
}
