package execution

// TransactionType is the kind of transaction being billed.
type TransactionType int

const (
	Declare TransactionType = iota
	Deploy
	DeployAccount
	InitializeBlockInfo
	InvokeFunction
	L1Handler
)

// Uint64 is the stable wire encoding of the transaction type.
func (t TransactionType) Uint64() uint64 {
	return uint64(t)
}

func (t TransactionType) String() string {
	switch t {
	case Declare:
		return "DECLARE"
	case Deploy:
		return "DEPLOY"
	case DeployAccount:
		return "DEPLOY_ACCOUNT"
	case InitializeBlockInfo:
		return "INITIALIZE_BLOCK_INFO"
	case InvokeFunction:
		return "INVOKE_FUNCTION"
	case L1Handler:
		return "L1_HANDLER"
	default:
		return "UNKNOWN"
	}
}
