// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package firehose

const (
	// MaxBatchRecords is the PutRecordBatch record limit.
	MaxBatchRecords = 500
	// MaxBatchBytes is the PutRecordBatch payload limit before encoding.
	MaxBatchBytes = 4 * 1024 * 1024
	// MaxRecordBytes is the limit for a single record.
	MaxRecordBytes = 1000 * 1024
)

// FailedRecords pairs the request records of a PutRecordBatch call with
// its response entries and returns the ones that were not accepted, in
// order. The result is ready to resubmit.
func FailedRecords(in *PutRecordBatchInput, out *PutRecordBatchOutput) []Record {
	if in == nil || out == nil || out.FailedPutCount == nil || *out.FailedPutCount == 0 {
		return nil
	}

	failed := make([]Record, 0, *out.FailedPutCount)
	for i, entry := range out.RequestResponses {
		if i >= len(in.Records) {
			break
		}
		if entry.ErrorCode != nil && *entry.ErrorCode != "" {
			failed = append(failed, in.Records[i])
		}
	}
	return failed
}

// Batches splits records into groups that fit the PutRecordBatch limits.
func Batches(records []Record) [][]Record {
	var (
		batches [][]Record
		cur     []Record
		size    int
	)
	for _, r := range records {
		if len(cur) == MaxBatchRecords || (len(cur) > 0 && size+len(r.Data) > MaxBatchBytes) {
			batches = append(batches, cur)
			cur, size = nil, 0
		}
		cur = append(cur, r)
		size += len(r.Data)
	}
	if len(cur) > 0 {
		batches = append(batches, cur)
	}
	return batches
}
