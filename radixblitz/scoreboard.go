package radixblitz

// Factory default board, also what the maintenance reset restores.
var defaultScores = [5]int{10, 7, 5, 4, 2}

// RankOutcome reports where a finished session landed.
type RankOutcome struct {
	// Rank is the leaderboard position the score was inserted at,
	// 0 (best) to 4, or -1 if the score didn't place.
	Rank int
	// NewHighScore is set when the score strictly beat the previous
	// rank 0 entry.
	NewHighScore bool
}

// RecordSession ranks a finished session's score into the leaderboard.
// Entries below the insertion rank shift down one and the old rank 4
// entry drops off; a score that doesn't beat rank 4 leaves the board
// untouched. Call once per completed session. Persisting the result is
// the caller's job.
func (data *LocalData) RecordSession(finalScore int) RankOutcome {
	outcome := RankOutcome{Rank: -1}

	if finalScore > data.Leaderboard[0] {
		outcome.NewHighScore = true
	}
	if finalScore > data.BestEver {
		data.BestEver = finalScore
	}

	// Scan upward from rank 4. The first rank holding a score we don't
	// beat ends the scan: everything above it already outranks us.
	for i := len(data.Leaderboard) - 1; i >= 0; i-- {
		if finalScore <= data.Leaderboard[i] {
			break
		}
		outcome.Rank = i
	}

	if outcome.Rank >= 0 {
		for i := len(data.Leaderboard) - 1; i > outcome.Rank; i-- {
			data.Leaderboard[i] = data.Leaderboard[i-1]
		}
		data.Leaderboard[outcome.Rank] = finalScore
	}

	return outcome
}

// RankedScores returns the board best-first. Pure read.
func (data *LocalData) RankedScores() [5]int {
	return data.Leaderboard
}

// ResetToDefaults restores the factory board. Maintenance path only;
// BestEver and user options are left alone.
func (data *LocalData) ResetToDefaults() {
	data.Leaderboard = defaultScores
}

// Highscore returns the current rank 0 entry.
func (data *LocalData) Highscore() int {
	return data.Leaderboard[0]
}
