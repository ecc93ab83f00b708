package wal

import (
	"fmt"

	"google.golang.org/protobuf/proto"

	"darkpool/api/pb"
)

// EncodeInstruction serializes an instruction for journaling.
func EncodeInstruction(ins *pb.Instruction) ([]byte, error) {
	return proto.Marshal(ins)
}

// DecodeInstruction parses a journaled instruction payload.
func DecodeInstruction(data []byte) (*pb.Instruction, error) {
	ins := &pb.Instruction{}
	if err := proto.Unmarshal(data, ins); err != nil {
		return nil, fmt.Errorf("wal: bad instruction payload: %w", err)
	}
	return ins, nil
}

// KindOf maps a wire instruction kind to its journal record kind.
func KindOf(k pb.InstructionKind) Kind {
	return Kind(k)
}
