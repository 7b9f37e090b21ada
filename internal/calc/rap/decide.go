package rap

// DecideFormula picks a catalogue formula for an initial design from the
// deposit and the country it lies in.
//
//	India                     C.M.R.I.
//	South Africa, coal        Salamon-Munro Metric
//	South Africa, hard rock   Stacey-Page
//	oil shale (Estonia)       Obert-Duval
//	coal                      Bieniawski
//	hard rock                 Hardy-Agapito
//	anything else             Obert-Duval
func DecideFormula(ore OreType, loc Location) Formula {
	switch {
	case loc == India:
		return mustLookup("C.M.R.I.")
	case loc == SouthAfrica && ore == Coal:
		return mustLookup("Salamon-Munro Metric")
	case loc == SouthAfrica && ore == HardRock:
		return mustLookup("Stacey-Page")
	case ore == OilShale, loc == Estonia:
		return mustLookup("Obert-Duval")
	case ore == Coal:
		return mustLookup("Bieniawski")
	case ore == HardRock:
		return mustLookup("Hardy-Agapito")
	}
	return mustLookup("Obert-Duval")
}
