package intent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nautica/config"
	"nautica/internal/domains/intent"
)

func TestKeywordExtractor_Extract(t *testing.T) {
	extractor := intent.NewKeywordExtractor(&config.Config{})

	tests := []struct {
		name string
		text string
		want intent.Intent
	}{
		{
			name: "boat id and date",
			text: "Quero reservar o barco 550e8400-e29b-41d4-a716-446655440000 no dia 2026-09-05",
			want: intent.Intent{
				EntityID: "550e8400-e29b-41d4-a716-446655440000",
				Date:     "2026-09-05",
			},
		},
		{
			name: "impossible calendar date is ignored",
			text: "disponível em 2025-13-45?",
			want: intent.Intent{},
		},
		{
			name: "malformed id is ignored",
			text: "id zzzzzzzz-e29b-41d4-a716-446655440000",
			want: intent.Intent{},
		},
		{
			name: "confirm needs verb and booking noun together",
			text: "confirmo a reserva 550e8400-e29b-41d4-a716-446655440000",
			want: intent.Intent{
				EntityID: "550e8400-e29b-41d4-a716-446655440000",
				Confirm:  true,
			},
		},
		{
			name: "confirm verb alone is not a confirmation",
			text: "pode confirmar se está disponível?",
			want: intent.Intent{},
		},
		{
			name: "booking noun alone is not a confirmation",
			text: "quanto custa a reserva?",
			want: intent.Intent{},
		},
		{
			name: "payment keyword",
			text: "quero pagar a reserva 550e8400-e29b-41d4-a716-446655440000",
			want: intent.Intent{
				EntityID: "550e8400-e29b-41d4-a716-446655440000",
				Payment:  true,
			},
		},
		{
			name: "english payment keyword",
			text: "checkout please",
			want: intent.Intent{Payment: true},
		},
		{
			name: "category synonym in portuguese",
			text: "tem algum veleiro disponível?",
			want: intent.Intent{Category: "sailboat"},
		},
		{
			name: "accented category synonym",
			text: "procuro um catamarã para o fim de semana",
			want: intent.Intent{Category: "catamaran"},
		},
		{
			name: "earliest of two category synonyms wins",
			text: "uma lancha ou iate para sábado",
			want: intent.Intent{Category: "speedboat"},
		},
		{
			name: "earliest synonym wins regardless of wording order",
			text: "um iate ou lancha para sábado",
			want: intent.Intent{Category: "yacht"},
		},
		{
			name: "plain greeting carries no signal",
			text: "oi, tudo bem?",
			want: intent.Intent{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractor.Extract(tt.text))
		})
	}
}
