package execution

// L1 gas schedule. Word costs follow the Ethereum calldata/log schedule the
// settlement contract pays; SHARP costs are the proof system's amortized
// per-word share.
const (
	wordWidth = 32

	gasPerMemoryByte = 16
	gasPerMemoryWord = gasPerMemoryByte * wordWidth

	gasPerZeroToNonzeroStorageSet = 20000

	gasPerLog         = 375
	gasPerLogTopic    = 375
	gasPerLogDataByte = 8
	gasPerLogDataWord = gasPerLogDataByte * wordWidth
	nDefaultTopics    = 1 // the event signature topic

	sharpGasPerMemoryWord = 10

	// Message headers as settled on L1: an L2->L1 message carries
	// (from_address, to_address, payload_size); an L1->L2 message carries
	// (from_address, to_address, nonce, selector, payload_size).
	l2ToL1MessageHeaderSize = 3
	l1ToL2MessageHeaderSize = 5

	// Topic counts of the settlement contract's events.
	logMessageToL1Topics      = 2
	consumedMessageToL2Topics = 3
)

// messageSegmentLength is the number of memory words the message segment of
// the proof occupies: every L2->L1 message with its header, plus the
// consumed L1 handler message when the transaction is one.
func messageSegmentLength(messages []L2ToL1MessageInfo, l1HandlerPayloadSize *int) int {
	length := 0
	for idx := range messages {
		length += l2ToL1MessageHeaderSize + len(messages[idx].Payload)
	}
	if l1HandlerPayloadSize != nil {
		length += l1ToL2MessageHeaderSize + *l1HandlerPayloadSize
	}
	return length
}

// onchainDataSegmentLength is the number of words of on-chain data the
// transaction publishes: two words per modified contract (address and
// update summary), two per deployment (address and class hash) and two per
// storage change (key and value).
func onchainDataSegmentLength(nModifiedContracts, nStorageChanges, nDeployments int) int {
	return nModifiedContracts*2 + nDeployments*2 + nStorageChanges*2
}

// eventEmissionCost is the L1 gas an event with the given topic and data-word
// counts costs the settlement contract.
func eventEmissionCost(nTopics, dataLength int) int {
	return gasPerLog + (nTopics+nDefaultTopics)*gasPerLogTopic + dataLength*gasPerLogDataWord
}

func logMessageToL1EmissionsCost(messages []L2ToL1MessageInfo) int {
	cost := 0
	for idx := range messages {
		// The payload size is emitted alongside the payload itself.
		cost += eventEmissionCost(logMessageToL1Topics, len(messages[idx].Payload)+1)
	}
	return cost
}

func consumedMessageToL2EmissionsCost(l1HandlerPayloadSize *int) int {
	if l1HandlerPayloadSize == nil {
		return 0
	}
	// Payload plus selector and nonce.
	return eventEmissionCost(consumedMessageToL2Topics, *l1HandlerPayloadSize+2)
}

// CalculateTxGasUsage returns the L1 gas the most recent transaction costs as
// if it were the first in its batch, so fees stay consistent regardless of
// batching.
func CalculateTxGasUsage(messages []L2ToL1MessageInfo, nModifiedContracts, nStorageChanges int,
	l1HandlerPayloadSize *int, nDeployments int,
) int {
	residualMessageSegment := messageSegmentLength(messages, l1HandlerPayloadSize)
	residualOnchainData := onchainDataSegmentLength(nModifiedContracts, nStorageChanges, nDeployments)

	starknetGasUsage := residualMessageSegment*gasPerMemoryWord +
		len(messages)*gasPerZeroToNonzeroStorageSet +
		consumedMessageToL2EmissionsCost(l1HandlerPayloadSize) +
		logMessageToL1EmissionsCost(messages)

	sharpGasUsage := residualMessageSegment*sharpGasPerMemoryWord +
		residualOnchainData*sharpGasPerMemoryWord

	return starknetGasUsage + sharpGasUsage
}
