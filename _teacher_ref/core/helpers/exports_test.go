package helpers

var (
	ErrNilMessage            = errNilMessage
	ErrNilData               = errNilData
	ErrNilBeaconBlockRoot    = errNilBeaconBlockRoot
	ErrNilPayloadAttestation = errNilPayloadAttestation
	ErrNilSignature          = errNilSignature
	ErrNilAggregationBits    = errNilAggregationBits
	ErrPreEPBSState          = errPreEPBSState
	ErrCommitteeOverflow     = errCommitteeOverflow
)
