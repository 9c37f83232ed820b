package metadata

import (
	"context"

	"github.com/reoring/lensmeta"
	"github.com/reoring/lensmeta/dsl"
	"github.com/reoring/lensmeta/primitives"
)

// ConditionType discriminates access conditions.
type ConditionType string

const (
	NftOwnershipCondition     ConditionType = "NFT_OWNERSHIP"
	Erc20OwnershipCondition   ConditionType = "ERC20_OWNERSHIP"
	EoaOwnershipCondition     ConditionType = "EOA_OWNERSHIP"
	ProfileOwnershipCondition ConditionType = "PROFILE_OWNERSHIP"
	FollowCondition           ConditionType = "FOLLOW"
	CollectCondition          ConditionType = "COLLECT"
	AndCondition              ConditionType = "AND"
	OrCondition               ConditionType = "OR"
)

const (
	minCriteria = 2
	maxCriteria = 5
)

// NetworkAddress is a contract address on a given chain.
type NetworkAddress struct {
	Address primitives.EvmAddress `json:"address"`
	ChainID primitives.ChainID    `json:"chainId"`
}

// Asset is an ERC-20 token.
type Asset struct {
	Contract NetworkAddress `json:"contract"`
	Decimals int            `json:"decimals"`
}

// Amount is a decimal token amount.
type Amount struct {
	Asset Asset  `json:"asset"`
	Value string `json:"value"`
}

// AccessCondition is the flattened typed form of every condition kind. Only
// the fields belonging to Type are set.
type AccessCondition struct {
	Type            ConditionType         `json:"type"`
	Contract        *NetworkAddress       `json:"contract,omitempty"`
	ContractType    string                `json:"contractType,omitempty"`
	TokenIDs        []primitives.TokenID  `json:"tokenIds,omitempty"`
	Amount          *Amount               `json:"amount,omitempty"`
	Condition       string                `json:"condition,omitempty"`
	Address         primitives.EvmAddress `json:"address,omitempty"`
	ProfileID       string                `json:"profileId,omitempty"`
	Follow          string                `json:"follow,omitempty"`
	PublicationID   string                `json:"publicationId,omitempty"`
	ThisPublication *bool                 `json:"thisPublication,omitempty"`
	Criteria        []AccessCondition     `json:"criteria,omitempty"`
}

func networkAddressSchema() dsl.Node {
	return dsl.Object().
		Field("address", primitives.EvmAddressSchema()).
		Field("chainId", primitives.ChainIDSchema()).
		MustBuild()
}

func conditionObject(t ConditionType) *dsl.ObjectBuilder {
	b := dsl.Object()
	b.Field("type", dsl.Literal(string(t)))
	return b
}

// NftOwnershipConditionSchema requires ownership of an ERC-721 or ERC-1155
// token. ERC-1155 conditions must name at least one token id.
func NftOwnershipConditionSchema() dsl.Node {
	return conditionObject(NftOwnershipCondition).
		Field("contract", networkAddressSchema()).
		Field("contractType", dsl.Enum("ERC721", "ERC1155")).
		Field("tokenIds", dsl.Array(primitives.TokenIDSchema()).Unique(dsl.StringKey)).Optional().
		Refine("erc1155_token_ids", func(_ context.Context, m map[string]any) error {
			if m["contractType"] != "ERC1155" {
				return nil
			}
			if ids, _ := m["tokenIds"].([]any); len(ids) > 0 {
				return nil
			}
			return lensmeta.Issues{lensmeta.CrossField("ERC1155 requires at least one token id.", "tokenIds")}
		}).
		MustBuild()
}

// Erc20OwnershipConditionSchema compares an ERC-20 balance to an amount.
func Erc20OwnershipConditionSchema() dsl.Node {
	amount := dsl.Object().
		Field("asset", dsl.Object().
			Field("contract", networkAddressSchema()).
			Field("decimals", dsl.Number().Int().Min(0)).
			MustBuild()).
		Field("value", dsl.String().Regex(decimalRe, "Invalid amount")).
		MustBuild()
	return conditionObject(Erc20OwnershipCondition).
		Field("amount", amount).
		Field("condition", dsl.Enum("EQUAL", "NOT_EQUAL", "GREATER_THAN", "GREATER_THAN_OR_EQUAL",
			"LESS_THAN", "LESS_THAN_OR_EQUAL")).
		MustBuild()
}

// EoaOwnershipConditionSchema requires control of an address.
func EoaOwnershipConditionSchema() dsl.Node {
	return conditionObject(EoaOwnershipCondition).
		Field("address", primitives.EvmAddressSchema()).
		MustBuild()
}

// ProfileOwnershipConditionSchema requires ownership of a profile.
func ProfileOwnershipConditionSchema() dsl.Node {
	return conditionObject(ProfileOwnershipCondition).
		Field("profileId", profileIDSchema()).
		MustBuild()
}

// FollowConditionSchema requires following a profile.
func FollowConditionSchema() dsl.Node {
	return conditionObject(FollowCondition).
		Field("follow", profileIDSchema()).
		MustBuild()
}

// CollectConditionSchema requires having collected a publication.
func CollectConditionSchema() dsl.Node {
	return conditionObject(CollectCondition).
		Field("publicationId", primitives.NonEmptyStringSchema()).
		Field("thisPublication", dsl.Bool()).Optional().
		MustBuild()
}

func simpleConditionVariants() []dsl.UnionVariant {
	return []dsl.UnionVariant{
		dsl.Variant(string(NftOwnershipCondition), NftOwnershipConditionSchema()),
		dsl.Variant(string(Erc20OwnershipCondition), Erc20OwnershipConditionSchema()),
		dsl.Variant(string(EoaOwnershipCondition), EoaOwnershipConditionSchema()),
		dsl.Variant(string(ProfileOwnershipCondition), ProfileOwnershipConditionSchema()),
		dsl.Variant(string(FollowCondition), FollowConditionSchema()),
		dsl.Variant(string(CollectCondition), CollectConditionSchema()),
	}
}

// SimpleConditionSchema accepts any condition that is not a boolean
// combination.
func SimpleConditionSchema() dsl.Node {
	return dsl.Object().Discriminator("type").OneOf(simpleConditionVariants()...).MustBuild()
}

func criteriaSchema() dsl.Node {
	return dsl.Array(SimpleConditionSchema()).
		Min(minCriteria, "Should have at least 2 conditions").
		Max(maxCriteria, "Should have at most 5 conditions")
}

// AndConditionSchema requires every criterion to hold.
func AndConditionSchema() dsl.Node {
	return conditionObject(AndCondition).Field("criteria", criteriaSchema()).MustBuild()
}

// OrConditionSchema requires at least one criterion to hold.
func OrConditionSchema() dsl.Node {
	return conditionObject(OrCondition).Field("criteria", criteriaSchema()).MustBuild()
}

// AnyConditionSchema accepts every condition kind, boolean combinations
// included. Combinations cannot be nested.
func AnyConditionSchema() dsl.Node {
	vars := append(simpleConditionVariants(),
		dsl.Variant(string(AndCondition), AndConditionSchema()),
		dsl.Variant(string(OrCondition), OrConditionSchema()),
	)
	return dsl.Object().Discriminator("type").
		Description("An access condition gating encrypted content.").
		OneOf(vars...).
		MustBuild()
}
