package depthchart

// NFL position codes.
const (
	// Offense
	PositionQB = "QB"
	PositionRB = "RB"
	PositionWR = "WR"
	PositionTE = "TE"
	PositionOT = "OT"
	PositionOG = "OG"
	PositionOC = "OC"

	// Defense
	PositionDE  = "DE"
	PositionDT  = "DT"
	PositionOLB = "OLB"
	PositionILB = "ILB"
	PositionCB  = "CB"
	PositionS   = "S"

	// Special teams
	PositionPK = "PK"
	PositionP  = "P"
	PositionLS = "LS"
	PositionKR = "KR"
	PositionPR = "PR"
)

const SportNFL = "NFL"

func NFLPositions() []string {
	return []string{
		PositionQB, PositionRB, PositionWR, PositionTE, PositionOT, PositionOG, PositionOC,
		PositionDE, PositionDT, PositionOLB, PositionILB, PositionCB, PositionS,
		PositionPK, PositionP, PositionLS, PositionKR, PositionPR,
	}
}
