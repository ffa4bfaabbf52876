package params

// MinimalConfig returns the small parameter set used by test suites
// so that shuffling, committees, and epoch processing can be
// exercised end-to-end with a handful of validators instead of the full
// mainnet validator set.
func MinimalConfig() *Config {
	cfg := MainnetConfig()

	cfg.SlotsPerEpoch = 8
	cfg.MinAttestationInclusionDelay = 2
	cfg.SlotsPerEth1VotingPeriod = 4
	cfg.SlotsPerHistoricalRoot = 64
	cfg.PersistentCommitteePeriod = 128
	cfg.MinValidatorWithdrawabilityDelay = 16
	cfg.ActivationExitDelay = 4
	cfg.EpochsPerHistoricalVector = 64
	cfg.EpochsPerSlashingsVector = 64

	cfg.ShardCount = 8
	cfg.MaxCommitteesPerSlot = 4
	cfg.TargetCommitteeSize = 4
	cfg.ShuffleRoundCount = 10

	cfg.DepositsForChainStart = 64

	return cfg
}
