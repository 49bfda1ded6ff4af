package airdrop

import "fmt"

type Status string

const (
	StatusTracking Status = "Tracking"
	StatusActive   Status = "Active"
	StatusSnapshot Status = "Snapshot Taken"
	StatusClaimed  Status = "Claimed"
	StatusDropped  Status = "Dropped"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusTracking, StatusActive, StatusSnapshot, StatusClaimed, StatusDropped}

// Validate возвращает ошибку для неизвестного статуса.
func (s Status) Validate() error {
	for _, v := range Statuses {
		if s == v {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, s)
}

func (s Status) String() string {
	return string(s)
}

// Networks lists the networks offered by the filters.
var Networks = []string{
	"Ethereum", "Arbitrum", "Optimism", "Base", "Polygon",
	"Solana", "Sui", "Aptos", "zkSync", "Starknet", "Other",
}

func validateNetwork(n string) error {
	for _, v := range Networks {
		if n == v {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown network %q", ErrInvalidInput, n)
}

// Schema versions of the airdrop record. Every version adds optional fields.
const (
	SchemaV1      = 1 // name, network, status, notes
	SchemaV2      = 2 // website, funds, estimated_tge, estimated_value, tasks_summary
	SchemaV3      = 3 // start_date, end_date, farming_points
	CurrentSchema = SchemaV3
)
