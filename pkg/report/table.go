package report

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// Report table layout:
//
//	table Report {
//	  run_id:string;
//	  area:long;
//	  bound_area:long;
//	  a_row:long; a_col:long;
//	  b_row:long; b_col:long;
//	  grid_rows:int; grid_cols:int;
//	  block_size:int;
//	  elapsed_ns:long;
//	  points:int;
//	}
//	file_identifier "RFRP";
const (
	slotRunID = iota
	slotArea
	slotBoundArea
	slotARow
	slotACol
	slotBRow
	slotBCol
	slotGridRows
	slotGridCols
	slotBlockSize
	slotElapsedNS
	slotPoints
	numSlots
)

type table struct {
	_tab flatbuffers.Table
}

func rootAsTable(buf []byte, offset flatbuffers.UOffsetT) *table {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &table{}
	x._tab.Bytes = buf
	x._tab.Pos = n + offset
	return x
}

func vtableOffset(slot int) flatbuffers.VOffsetT {
	return flatbuffers.VOffsetT(4 + 2*slot)
}

func (rcv *table) int64At(slot int) int64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(vtableOffset(slot)))
	if o != 0 {
		return rcv._tab.GetInt64(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *table) int32At(slot int) int32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(vtableOffset(slot)))
	if o != 0 {
		return rcv._tab.GetInt32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *table) stringAt(slot int) []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(vtableOffset(slot)))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

func tableStart(b *flatbuffers.Builder) {
	b.StartObject(numSlots)
}

func tableAddString(b *flatbuffers.Builder, slot int, off flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(slot, off, 0)
}

func tableAddInt64(b *flatbuffers.Builder, slot int, v int64) {
	b.PrependInt64Slot(slot, v, 0)
}

func tableAddInt32(b *flatbuffers.Builder, slot int, v int32) {
	b.PrependInt32Slot(slot, v, 0)
}

func tableEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	return b.EndObject()
}
