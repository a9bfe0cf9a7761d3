// services/predictor.go
package services

// TypePrediction is a guessed type plus a confidence percentage.
type TypePrediction struct {
	Type       string `json:"type"`
	Confidence int    `json:"confidence"`
}

// PredictType guesses a type from a base stat spread. It is a fixed decision
// ladder over stat patterns (fast special attackers read Electric/Psychic,
// walls read Steel/Rock, and so on) — a demonstration heuristic, not a
// trained model. Rules are ordered; the first match wins.
func PredictType(hp, attack, defense, spAtk, spDef, speed int) TypePrediction {
	totalDefense := float64(defense+spDef) / 2

	if spAtk > 100 && speed > 90 {
		if float64(spAtk) > float64(attack)*1.5 {
			return TypePrediction{Type: "Electric", Confidence: 85}
		}
		return TypePrediction{Type: "Psychic", Confidence: 80}
	}

	if attack > 100 && defense > 90 {
		if float64(attack) > float64(spAtk)*1.5 {
			return TypePrediction{Type: "Fighting", Confidence: 85}
		}
		return TypePrediction{Type: "Rock", Confidence: 75}
	}

	if totalDefense > 100 {
		if hp > 100 {
			return TypePrediction{Type: "Steel", Confidence: 80}
		}
		return TypePrediction{Type: "Rock", Confidence: 75}
	}

	if speed > 110 {
		if attack > spAtk {
			return TypePrediction{Type: "Flying", Confidence: 80}
		}
		return TypePrediction{Type: "Electric", Confidence: 75}
	}

	if spAtk > 90 && totalDefense > 80 {
		return TypePrediction{Type: "Dragon", Confidence: 82}
	}

	if attack > 100 {
		if speed > 80 {
			return TypePrediction{Type: "Dark", Confidence: 78}
		}
		return TypePrediction{Type: "Fighting", Confidence: 75}
	}

	if spAtk > 90 {
		if spDef > defense {
			return TypePrediction{Type: "Fairy", Confidence: 75}
		}
		return TypePrediction{Type: "Fire", Confidence: 80}
	}

	if defense > 90 {
		return TypePrediction{Type: "Steel", Confidence: 72}
	}

	if hp > 100 {
		return TypePrediction{Type: "Normal", Confidence: 70}
	}

	return TypePrediction{Type: "Normal", Confidence: 65}
}
