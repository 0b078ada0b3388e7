package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var slugShape = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple title", "Deep Learning", "deep-learning"},
		{"already normalized", "deep-learning", "deep-learning"},
		{"mixed case and digits", "GPT 4 Benchmarks 2024", "gpt-4-benchmarks-2024"},
		{"accented latin", "Étude de Régression", "etude-de-regression"},
		{"cedilla", "Aprendizado de Máquina em Ação", "aprendizado-de-maquina-em-acao"},
		{"esszett", "Straße Analyse", "strasse-analyse"},
		{"ae ligature", "Ælfred's Corpus", "aelfreds-corpus"},
		{"oe ligature", "Cœur du Réseau", "coeur-du-reseau"},
		{"slashed o", "København Dataset", "kobenhavn-dataset"},
		{"punctuation stripped", "What's Next? (Part 2)", "whats-next-part-2"},
		{"whitespace runs", "too   many\t spaces", "too-many-spaces"},
		{"hyphen runs", "pre--release -- notes", "pre-release-notes"},
		{"leading trailing junk", "  --Trimmed Title--  ", "trimmed-title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateSlug(tt.title)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Regexp(t, slugShape, got)
		})
	}
}

func TestGenerateSlugEmptyResult(t *testing.T) {
	for _, title := range []string{"", "!!!", "???###", "¡¿", "   ", "---"} {
		_, err := GenerateSlug(title)
		assert.ErrorIs(t, err, ErrEmptySlug, "title %q", title)
	}
}

func TestGenerateSlugIdempotent(t *testing.T) {
	titles := []string{"Étude de Régression", "GPT 4 Benchmarks 2024", "Straße Analyse"}

	for _, title := range titles {
		once, err := GenerateSlug(title)
		require.NoError(t, err)

		twice, err := GenerateSlug(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	}
}

func TestGenerateSlugDeterministic(t *testing.T) {
	a, err := GenerateSlug("Évaluation Sémantique")
	require.NoError(t, err)

	b, err := GenerateSlug("Évaluation Sémantique")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
