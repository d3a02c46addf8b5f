package oracle

import "testing"

func TestSanitizeMissionBrief(t *testing.T) {
	tests := []struct {
		name  string
		in    MissionBrief
		check func(t *testing.T, got MissionBrief)
	}{
		{
			name: "sane brief passes through",
			in:   MissionBrief{Difficulty: DifficultyHard, RewardCrypto: 5000, SuccessChance: 65, DurationHours: 4},
			check: func(t *testing.T, got MissionBrief) {
				if got.RewardCrypto != 5000 || got.SuccessChance != 65 || got.DurationHours != 4 {
					t.Errorf("in-bounds values were altered: %+v", got)
				}
			},
		},
		{
			name: "negative reward floors at zero",
			in:   MissionBrief{Difficulty: DifficultyEasy, RewardCrypto: -400, SuccessChance: 50, DurationHours: 2},
			check: func(t *testing.T, got MissionBrief) {
				if got.RewardCrypto != 0 {
					t.Errorf("RewardCrypto = %v, want 0", got.RewardCrypto)
				}
			},
		},
		{
			name: "runaway success chance clamps to 100",
			in:   MissionBrief{Difficulty: DifficultyEasy, SuccessChance: 450, DurationHours: 2},
			check: func(t *testing.T, got MissionBrief) {
				if got.SuccessChance != 100 {
					t.Errorf("SuccessChance = %v, want 100", got.SuccessChance)
				}
			},
		},
		{
			name: "invented difficulty falls back to medium",
			in:   MissionBrief{Difficulty: "apocalyptic", SuccessChance: 50, DurationHours: 2},
			check: func(t *testing.T, got MissionBrief) {
				if got.Difficulty != DifficultyMedium {
					t.Errorf("Difficulty = %q, want medium", got.Difficulty)
				}
			},
		},
		{
			name: "zero duration floors at one hour",
			in:   MissionBrief{Difficulty: DifficultyEasy, SuccessChance: 50, DurationHours: 0},
			check: func(t *testing.T, got MissionBrief) {
				if got.DurationHours != 1 {
					t.Errorf("DurationHours = %v, want 1", got.DurationHours)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, SanitizeMissionBrief(tt.in))
		})
	}
}

func TestSanitizeNPCClampsStats(t *testing.T) {
	got := SanitizeNPC(NPCProfile{Strength: 150, Cunning: -20, Loyalty: 60})

	if got.Strength != 100 {
		t.Errorf("Strength = %v, want 100", got.Strength)
	}
	if got.Cunning != 0 {
		t.Errorf("Cunning = %v, want 0", got.Cunning)
	}
	if got.Loyalty != 60 {
		t.Errorf("Loyalty = %v, want 60", got.Loyalty)
	}
}

func TestSanitizeCommentaryCapsReturn(t *testing.T) {
	got := SanitizeCommentary(InvestmentCommentary{SuggestedDailyPct: 400, Confidence: 120})

	if got.SuggestedDailyPct != 25 {
		t.Errorf("SuggestedDailyPct = %v, want 25", got.SuggestedDailyPct)
	}
	if got.Confidence != 100 {
		t.Errorf("Confidence = %v, want 100", got.Confidence)
	}
}
