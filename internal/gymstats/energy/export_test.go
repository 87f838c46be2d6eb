package energy

var RoundHalfUp = roundHalfUp
