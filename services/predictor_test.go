package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredictType(t *testing.T) {
	type spread struct {
		hp, attack, defense, spAtk, spDef, speed int
	}
	tests := []struct {
		name  string
		stats spread
		want  TypePrediction
	}{
		{
			name:  "fast lopsided special attacker",
			stats: spread{hp: 60, attack: 50, defense: 50, spAtk: 120, spDef: 60, speed: 100},
			want:  TypePrediction{Type: "Electric", Confidence: 85},
		},
		{
			name:  "fast mixed special attacker",
			stats: spread{hp: 60, attack: 90, defense: 50, spAtk: 110, spDef: 60, speed: 95},
			want:  TypePrediction{Type: "Psychic", Confidence: 80},
		},
		{
			name:  "lopsided physical bruiser",
			stats: spread{hp: 70, attack: 120, defense: 100, spAtk: 40, spDef: 60, speed: 50},
			want:  TypePrediction{Type: "Fighting", Confidence: 85},
		},
		{
			name:  "mixed physical bruiser",
			stats: spread{hp: 70, attack: 110, defense: 95, spAtk: 100, spDef: 60, speed: 50},
			want:  TypePrediction{Type: "Rock", Confidence: 75},
		},
		{
			name:  "bulky wall with big hp",
			stats: spread{hp: 110, attack: 50, defense: 120, spAtk: 40, spDef: 100, speed: 30},
			want:  TypePrediction{Type: "Steel", Confidence: 80},
		},
		{
			name:  "bulky wall with ordinary hp",
			stats: spread{hp: 80, attack: 50, defense: 120, spAtk: 40, spDef: 100, speed: 30},
			want:  TypePrediction{Type: "Rock", Confidence: 75},
		},
		{
			name:  "fast physical sweeper",
			stats: spread{hp: 60, attack: 90, defense: 60, spAtk: 50, spDef: 60, speed: 120},
			want:  TypePrediction{Type: "Flying", Confidence: 80},
		},
		{
			name:  "fast special sweeper",
			stats: spread{hp: 60, attack: 50, defense: 50, spAtk: 90, spDef: 50, speed: 120},
			want:  TypePrediction{Type: "Electric", Confidence: 75},
		},
		{
			name:  "bulky special attacker",
			stats: spread{hp: 80, attack: 60, defense: 85, spAtk: 95, spDef: 85, speed: 60},
			want:  TypePrediction{Type: "Dragon", Confidence: 82},
		},
		{
			name:  "high hp flat spread",
			stats: spread{hp: 120, attack: 50, defense: 50, spAtk: 50, spDef: 50, speed: 50},
			want:  TypePrediction{Type: "Normal", Confidence: 70},
		},
		{
			name:  "flat spread falls through to the default",
			stats: spread{hp: 85, attack: 85, defense: 85, spAtk: 85, spDef: 85, speed: 85},
			want:  TypePrediction{Type: "Normal", Confidence: 65},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.stats
			got := PredictType(s.hp, s.attack, s.defense, s.spAtk, s.spDef, s.speed)
			assert.Equal(t, tt.want, got)
		})
	}
}
