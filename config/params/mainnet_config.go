package params

// MainnetConfig returns the full-size production parameter set. Constants
// follow the phase0-with-crosslinks profile; values are chosen to match
// the reference test vectors rather than any later, shard-less revision.
func MainnetConfig() *Config {
	return &Config{
		SecondsPerSlot:                   6,
		SlotsPerEpoch:                    64,
		MinAttestationInclusionDelay:     4,
		SlotsPerEth1VotingPeriod:         16,
		SlotsPerHistoricalRoot:           8192,
		PersistentCommitteePeriod:        2048,
		MinValidatorWithdrawabilityDelay: 256,
		ActivationExitDelay:              4,
		EpochsPerHistoricalVector:        65536,
		EpochsPerSlashingsVector:         8192,
		HistoricalRootsLimit:             16777216,

		ValidatorRegistryLimit: 1099511627776,

		ShardCount:                1024,
		MaxCommitteesPerSlot:      64,
		TargetCommitteeSize:       128,
		MaxValidatorsPerCommittee: 4096,
		MaxEpochsPerCrosslink:     64,
		ShuffleRoundCount:         90,

		MinDepositAmount:          1000000000,
		MaxEffectiveBalance:       32000000000,
		EjectionBalance:           16000000000,
		EffectiveBalanceIncrement: 1000000000,

		BaseRewardFactor:            64,
		BaseRewardsPerEpoch:         baseRewardsPerEpoch,
		WhistleblowerRewardQuotient: 512,
		ProposerRewardQuotient:      8,
		InactivityPenaltyQuotient:   33554432,
		MinSlashingPenaltyQuotient:  32,

		MaxProposerSlashings: 16,
		MaxAttesterSlashings: 1,
		MaxAttestations:      128,
		MaxDeposits:          16,
		MaxVoluntaryExits:    16,
		MaxTransfers:         16,

		DomainBeaconProposer: [4]byte{0, 0, 0, 0},
		DomainRandao:         [4]byte{1, 0, 0, 0},
		DomainAttestation:    [4]byte{2, 0, 0, 0},
		DomainDeposit:        [4]byte{3, 0, 0, 0},
		DomainVoluntaryExit:  [4]byte{4, 0, 0, 0},
		DomainTransfer:       [4]byte{5, 0, 0, 0},

		GenesisEpoch:             0,
		GenesisSlot:              0,
		FarFutureEpoch:           1<<64 - 1,
		DepositContractTreeDepth: 32,
		JustificationBitsLength:  justificationBitsLength,
		BLSWithdrawalPrefixByte:  0,

		DepositsForChainStart: 16384,
	}
}
