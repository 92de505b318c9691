package forecast_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/vcrm-app/vcrm-api/internal/domain/entity"
	"github.com/vcrm-app/vcrm-api/internal/domain/forecast"
)

// ──────────────────────────────────────────────────────────────────────────────
// Classify: l'unico punto che interpreta le label di stage. Dashboard,
// statistiche e trend vinte/perse devono leggere tutti la stessa
// classificazione, quindi questi casi la inchiodano.
// ──────────────────────────────────────────────────────────────────────────────

func TestClassify_CategorieBase(t *testing.T) {
	cases := []struct {
		stage string
		want  forecast.StageCategory
	}{
		{"Lead", forecast.StageActive},
		{"In contatto", forecast.StageActive},
		{"Follow Up da fare", forecast.StageActive},
		{"Revisionare offerta", forecast.StageActive},
		{"Chiuso Vinto", forecast.StageWon},
		{"Chiuso Perso", forecast.StageLost},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, forecast.Classify(c.stage), "stage %q", c.stage)
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	assert.Equal(t, forecast.StageWon, forecast.Classify("chiuso vinto"))
	assert.Equal(t, forecast.StageWon, forecast.Classify("CHIUSO VINTO"))
	assert.Equal(t, forecast.StageLost, forecast.Classify("chiuso PERSO"))
}

func TestClassify_StageVuotoEDefault(t *testing.T) {
	// Stage vuoto = opportunità appena creata: attiva (default Lead).
	assert.Equal(t, forecast.StageActive, forecast.Classify(""))
	// Stage sconosciuto: mai un errore, resta attivo.
	assert.Equal(t, forecast.StageActive, forecast.Classify("Trattativa avanzata"))
}

func TestClassify_ChiusoGenericoSenzaVintoEPerso(t *testing.T) {
	// Contiene il marker di chiusura ma non quello di vittoria: perso.
	assert.Equal(t, forecast.StageLost, forecast.Classify("Chiuso"))
}

func TestCountsAsWon_PerOriginalStage(t *testing.T) {
	// Riclassificata dopo la vittoria: resta ordinato grazie a OriginalStage.
	o := entity.Opportunity{Stage: "Revisionare offerta", OriginalStage: "Chiuso Vinto"}
	assert.True(t, forecast.CountsAsWon(o))

	// Persa e basta: non conta.
	assert.False(t, forecast.CountsAsWon(entity.Opportunity{Stage: "Chiuso Perso"}))

	// OriginalStage perso non riabilita nulla.
	o = entity.Opportunity{Stage: "Lead", OriginalStage: "Chiuso Perso"}
	assert.False(t, forecast.CountsAsWon(o))
}

// ──────────────────────────────────────────────────────────────────────────────
// WinProbability: regola di precedenza unica (campo esplicito > tabella >
// default 30%).
// ──────────────────────────────────────────────────────────────────────────────

func TestWinProbability_TabellaPerStage(t *testing.T) {
	cases := []struct {
		stage string
		want  string
	}{
		{"Lead", "0.1"},
		{"In contatto", "0.2"},
		{"Follow Up da fare", "0.4"},
		{"Revisionare offerta", "0.6"},
		{"Stage mai visto", "0.3"}, // default
	}
	for _, c := range cases {
		got := forecast.WinProbability(entity.Opportunity{Stage: c.stage})
		assert.Equal(t, c.want, got.String(), "stage %q", c.stage)
	}
}

func TestWinProbability_CampoEsplicitoVinceSullaTabella(t *testing.T) {
	p := 75
	o := entity.Opportunity{Stage: "Lead", Probability: &p}
	assert.Equal(t, "0.75", forecast.WinProbability(o).String())
}

func TestWinProbability_ZeroEsplicitoNonEAssente(t *testing.T) {
	// Probability 0 dichiarata vale 0%, non ricade sulla tabella.
	p := 0
	o := entity.Opportunity{Stage: "Revisionare offerta", Probability: &p}
	assert.True(t, forecast.WinProbability(o).IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// WeightedPipeline
// ──────────────────────────────────────────────────────────────────────────────

func TestWeightedPipeline_SoloOpportunitaAttive(t *testing.T) {
	opps := []entity.Opportunity{
		{Stage: "Lead", Value: decimal.NewFromInt(20000)},               // 20000*0.10 = 2000
		{Stage: "Revisionare offerta", Value: decimal.NewFromInt(1000)}, // 1000*0.60 = 600
		{Stage: "Chiuso Vinto", Value: decimal.NewFromInt(99999)},       // chiusa: esclusa
		{Stage: "Chiuso Perso", Value: decimal.NewFromInt(99999)},       // chiusa: esclusa
	}
	got := forecast.WeightedPipeline(opps)
	assert.Equal(t, "2600", got.String())
}

func TestWeightedPipeline_IgnoraCloseDate(t *testing.T) {
	// La pipeline guarda avanti: un'opportunità attiva con closeDate in un
	// mese già passato contribuisce comunque per intero.
	past := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	opps := []entity.Opportunity{
		{Stage: "Lead", Value: decimal.NewFromInt(10000), CloseDate: &past},
	}
	assert.Equal(t, "1000", forecast.WeightedPipeline(opps).String())
}
