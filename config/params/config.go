// Package params defines the tunable constants of the beacon chain state
// transition. All numeric behavior of beacon-chain/core is driven off the
// *Config value returned by the package-level BeaconConfig().
package params

import "sync"

// Config bundles every constant the state transition needs. It
// satisfies the narrow contract general phase0 designs describe: the
// core does not embed a profile directly — it accepts any Config
// implementation whose numeric constants are internally consistent.
type Config struct {
	// Time parameters.
	SecondsPerSlot uint64
	SlotsPerEpoch uint64
	MinAttestationInclusionDelay uint64
	SlotsPerEth1VotingPeriod uint64
	SlotsPerHistoricalRoot uint64
	PersistentCommitteePeriod uint64
	MinValidatorWithdrawabilityDelay uint64
	ActivationExitDelay uint64
	EpochsPerHistoricalVector uint64
	EpochsPerSlashingsVector uint64
	HistoricalRootsLimit uint64

	// State list lengths.
	ValidatorRegistryLimit uint64

	// Committee / shard parameters.
	ShardCount uint64
	MaxCommitteesPerSlot uint64
	TargetCommitteeSize uint64
	MaxValidatorsPerCommittee uint64
	MaxEpochsPerCrosslink uint64
	ShuffleRoundCount uint64

	// Gwei values.
	MinDepositAmount uint64
	MaxEffectiveBalance uint64
	EjectionBalance uint64
	EffectiveBalanceIncrement uint64

	// Reward and penalty quotients.
	BaseRewardFactor uint64
	BaseRewardsPerEpoch uint64
	WhistleblowerRewardQuotient uint64
	ProposerRewardQuotient uint64
	InactivityPenaltyQuotient uint64
	MinSlashingPenaltyQuotient uint64

	// Max operations per block.
	MaxProposerSlashings uint64
	MaxAttesterSlashings uint64
	MaxAttestations uint64
	MaxDeposits uint64
	MaxVoluntaryExits uint64
	MaxTransfers uint64

	// Signature domains.
	DomainBeaconProposer [4]byte
	DomainRandao [4]byte
	DomainAttestation [4]byte
	DomainDeposit [4]byte
	DomainVoluntaryExit [4]byte
	DomainTransfer [4]byte

	// Misc.
	GenesisEpoch uint64
	GenesisSlot uint64
	FarFutureEpoch uint64
	DepositContractTreeDepth uint64
	JustificationBitsLength uint64
	BLSWithdrawalPrefixByte byte

	DepositsForChainStart uint64
}

// The justification bitvector length and the base-rewards-per-epoch
// divisor are definitional to the Casper-FFG rule itself, not tunables,
// so every preset sets JustificationBitsLength and BaseRewardsPerEpoch to
// these same values rather than letting them vary per profile.
const (	justificationBitsLength = 4
	baseRewardsPerEpoch = 5
)

var (	beaconConfig = MainnetConfig()
	configLock sync.RWMutex
)

// BeaconConfig returns the currently active process-global configuration.
// Only test harnesses and bootstrap code should call OverrideBeaconConfig;
// the transition core reads its constants through this function rather
// than taking a *Config argument.
func BeaconConfig() *Config {
	configLock.RLock()
	defer configLock.RUnlock()
	return beaconConfig
}

// OverrideBeaconConfig swaps the active global configuration. Used by
// tests to switch between mainnet and minimal presets.
func OverrideBeaconConfig(cfg *Config) {
	configLock.Lock()
	defer configLock.Unlock()
	beaconConfig = cfg
}

// Copy returns a deep copy (no pointer/slice fields today, so a plain
// struct copy suffices) so callers can freely mutate a scratch config for
// a single test without perturbing the shared instance.
func (b *Config) Copy() *Config {
	cpy := *b
	return &cpy
}
