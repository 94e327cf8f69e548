package errors

var (
	Unknown                         = NewError(100, "unknown error")
	NotImplemented                  = NewError(101, "not implemented")
	StorageRecordDoesNotExist       = NewError(102, "record does not exist in storage")
	StorageRecordAlreadyExists      = NewError(103, "record already exists in storage")
	StorageCoreError                = NewError(104, "storage error")
	StorageUnknownScheme            = NewError(105, "unknown storage scheme")
	BadPublicAddress                = NewError(106, "failed to parse public address")
	InvalidOperation                = NewError(107, "invalid operation")
	UnknownOperationType            = NewError(108, "unknown operation type")
	OperationBodyInsufficient       = NewError(109, "operation body insufficient")
	TransactionEmptyOperations      = NewError(110, "operations are empty")
	TransactionHasOverMaxOperations = NewError(111, "too many operations")
	TransactionInvalidHash          = NewError(112, "hash does not match with transaction body")
	TransactionInvalidSignature     = NewError(113, "signature verification failed")
	TransactionAlreadyApplied       = NewError(114, "transaction already applied")
	ReceiptDoesNotExist             = NewError(115, "receipt does not exist")
	BadRequestParameter             = NewError(116, "bad request parameter")
	ContractNotFound                = NewError(117, "contract not found")
	ContractMethodNotFound          = NewError(118, "contract method not found")
	ContractInvalidArguments        = NewError(119, "invalid contract arguments")
	ContractValueNotSupported       = NewError(120, "contract value type not supported")
	PollAlreadyCreated              = NewError(130, "poll already created")
	PollInvalidOptionCount          = NewError(131, "number of options must be between 2 and 4")
	PollInvalidDeadline             = NewError(132, "invalid end time")
	PollVotingEnded                 = NewError(133, "voting has ended")
	PollVotingNotStarted            = NewError(134, "voting has not started")
	PollInvalidOption               = NewError(135, "invalid option")
	PollAlreadyVoted                = NewError(136, "already voted")
	PollNotOptedIn                  = NewError(137, "account has not opted in")
	PollDoesNotExist                = NewError(138, "poll is not deployed")
	VoterRecordDoesNotExist         = NewError(139, "voter record does not exist")
	HTTPServerError                 = NewError(150, "Internal Server Error")
	ClockNTPQueryFailed             = NewError(151, "failed to query ntp server")
)
