package forecast

import (
	"github.com/shopspring/decimal"

	"github.com/vcrm-app/vcrm-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// stageProbability probabilità di vittoria di default (percentuale) per gli
// stage attivi noti. Tabella unica e fissa: la UI mostra le stesse percentuali.
var stageProbability = map[string]int64{
	entity.StageLead:       10,
	entity.StageInContatto: 20,
	entity.StageFollowUp:   40,
	entity.StageRevisione:  60,
}

// defaultProbability percentuale applicata a uno stage attivo non in tabella.
const defaultProbability = 30

// WinProbability risolve la probabilità di vittoria (frazione 0–1) di
// un'opportunità. Regola di precedenza, unica per tutti i call site:
//
//  1. Probability esplicita (0–100) se presente — vince sempre sulla tabella.
//  2. Tabella per stage.
//  3. Default 30% per stage attivi sconosciuti.
func WinProbability(o entity.Opportunity) decimal.Decimal {
	if o.Probability != nil {
		return decimal.NewFromInt(int64(*o.Probability)).Div(hundred)
	}
	if p, ok := stageProbability[o.Stage]; ok {
		return decimal.NewFromInt(p).Div(hundred)
	}
	return decimal.NewFromInt(defaultProbability).Div(hundred)
}

// WeightedPipeline somma il valore ponderato di TUTTE le opportunità ancora
// attive, indipendentemente dalla closeDate: la pipeline guarda avanti, non
// è vincolata alle date storiche di chiusura. Se la chiusura effettiva di
// un'opportunità attiva cade in un mese già passato il valore può risultare
// contato due volte nella proiezione: asimmetria voluta, da segnalare agli
// stakeholder, non un bug da correggere qui.
func WeightedPipeline(opportunities []entity.Opportunity) decimal.Decimal {
	total := decimal.Zero
	for _, o := range opportunities {
		if Classify(o.Stage) != StageActive {
			continue
		}
		total = total.Add(o.Value.Mul(WinProbability(o)))
	}
	return total
}
