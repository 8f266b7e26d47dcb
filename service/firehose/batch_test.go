// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package firehose

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutRecordBatchPartialFailure(t *testing.T) {
	c, s := newTestClient(t)
	s.StubJSON("Firehose_20150804.PutRecordBatch", http.StatusOK, `{
		"FailedPutCount": 1,
		"Encrypted": false,
		"RequestResponses": [
			{"RecordId": "r-0"},
			{"ErrorCode": "ServiceUnavailableException", "ErrorMessage": "slow down"},
			{"RecordId": "r-2"}
		]
	}`)

	in := &PutRecordBatchInput{
		DeliveryStreamName: aws.String("clicks"),
		Records:            []Record{{Data: []byte("a")}, {Data: []byte("b")}, {Data: []byte("c")}},
	}
	out, err := c.PutRecordBatch(context.Background(), in)
	require.NoError(t, err, "a partial failure is not an error")
	assert.Equal(t, int32(1), aws.ToInt32(out.FailedPutCount))

	failed := FailedRecords(in, out)
	require.Len(t, failed, 1)
	assert.Equal(t, []byte("b"), failed[0].Data)
	assert.Len(t, s.Requests(), 1, "records are never resent by the client")
}

func TestFailedRecordsNothingFailed(t *testing.T) {
	in := &PutRecordBatchInput{Records: []Record{{Data: []byte("a")}}}
	assert.Nil(t, FailedRecords(in, &PutRecordBatchOutput{FailedPutCount: aws.Int32(0)}))
	assert.Nil(t, FailedRecords(in, nil))
	assert.Nil(t, FailedRecords(nil, &PutRecordBatchOutput{}))
}

func TestBatches(t *testing.T) {
	assert.Empty(t, Batches(nil))

	small := make([]Record, 1201)
	for i := range small {
		small[i] = Record{Data: []byte("x")}
	}
	got := Batches(small)
	require.Len(t, got, 3)
	assert.Len(t, got[0], 500)
	assert.Len(t, got[1], 500)
	assert.Len(t, got[2], 201)

	big := bytes.Repeat([]byte("y"), MaxRecordBytes)
	large := []Record{{Data: big}, {Data: big}, {Data: big}, {Data: big}, {Data: big}}
	got = Batches(large)
	require.Len(t, got, 2)
	assert.Len(t, got[0], 4)
	assert.Len(t, got[1], 1)
}
