package excel

import (
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/tdiabate/farmpay/internal/model"
)

func TestBuildSheetNameTruncatesOnRuneBoundary(t *testing.T) {
	used := map[string]struct{}{}
	name := buildSheetName(model.ReportModeTransporter, "Aïssétou Kéïta-Ouédraogo de Bougouni", uuid.New(), used)

	assert.True(t, utf8.ValidString(name))
	assert.LessOrEqual(t, len([]rune(name)), 31)
	assert.Equal(t, "Planteur - Aïssétou Kéïta-Ouédr", name)
}

func TestBuildSheetNameDeduplicatesWithinLimit(t *testing.T) {
	used := map[string]struct{}{}
	first := buildSheetName(model.ReportModeFarmer, "Coopérative des Transporteurs Réunis", uuid.New(), used)
	used[first] = struct{}{}
	second := buildSheetName(model.ReportModeFarmer, "Coopérative des Transporteurs Réunis", uuid.New(), used)

	assert.NotEqual(t, first, second)
	assert.True(t, utf8.ValidString(second))
	assert.LessOrEqual(t, len([]rune(second)), 31)
}

func TestBuildSheetNameFallsBackToID(t *testing.T) {
	id := uuid.New()
	name := buildSheetName(model.ReportModeFarmer, "   ", id, map[string]struct{}{})

	assert.Contains(t, name, id.String()[:8])
}

func TestSanitizeSheetNameReplacesForbiddenChars(t *testing.T) {
	assert.Equal(t, "Transporteur - A-B -", sanitizeSheetName("Transporteur [ A/B ]"))
	assert.Equal(t, "Feuille", sanitizeSheetName("   "))
}
