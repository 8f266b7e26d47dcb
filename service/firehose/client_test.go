// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package firehose

import (
	"context"
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/awsctl/core"
	"github.com/tfctl/awsctl/internal/awstest"
)

func newTestClient(t *testing.T) (*Client, *awstest.Server) {
	t.Helper()
	s := awstest.NewServer(t)
	return NewFromConfig(s.Config()), s
}

func TestDescribeDeliveryStream(t *testing.T) {
	c, s := newTestClient(t)
	s.StubJSON("Firehose_20150804.DescribeDeliveryStream", http.StatusOK, `{
		"DeliveryStreamDescription": {
			"DeliveryStreamName": "clicks",
			"DeliveryStreamARN": "arn:aws:firehose:us-east-1:123456789012:deliverystream/clicks",
			"DeliveryStreamStatus": "ACTIVE",
			"DeliveryStreamType": "DirectPut",
			"VersionId": "3",
			"CreateTimestamp": 1700000000.123,
			"HasMoreDestinations": false,
			"Destinations": [{
				"DestinationId": "destinationId-000000000001",
				"ExtendedS3DestinationDescription": {
					"BucketARN": "arn:aws:s3:::clicks-bucket",
					"RoleARN": "arn:aws:iam::123456789012:role/firehose",
					"Prefix": "raw/",
					"CompressionFormat": "GZIP",
					"BufferingHints": {"IntervalInSeconds": 300, "SizeInMBs": 5},
					"EncryptionConfiguration": {"NoEncryptionConfig": "NoEncryption"}
				}
			}]
		}
	}`)

	out, err := c.DescribeDeliveryStream(context.Background(), &DescribeDeliveryStreamInput{
		DeliveryStreamName: aws.String("clicks"),
	})
	require.NoError(t, err)

	d := out.DeliveryStreamDescription
	require.NotNil(t, d)
	assert.Equal(t, DeliveryStreamStatusActive, d.DeliveryStreamStatus)
	assert.Equal(t, DeliveryStreamTypeDirectPut, d.DeliveryStreamType)
	assert.Equal(t, int64(1700000000123), d.CreateTimestamp.UnixMilli())
	require.Len(t, d.Destinations, 1)

	ext := d.Destinations[0].ExtendedS3DestinationDescription
	require.NotNil(t, ext)
	assert.Equal(t, CompressionFormatGzip, ext.CompressionFormat)
	assert.Equal(t, int32(300), aws.ToInt32(ext.BufferingHints.IntervalInSeconds))
	assert.Equal(t, NoEncryptionConfigNoEncryption, ext.EncryptionConfiguration.NoEncryptionConfig)

	req := s.LastRequest()
	assert.Equal(t, "Firehose_20150804.DescribeDeliveryStream", req.Target)
	assert.JSONEq(t, `{"DeliveryStreamName":"clicks"}`, string(req.Body))
	assert.Contains(t, req.Header.Get("Authorization"), "/firehose/aws4_request")
}

func TestPutRecordEncodesData(t *testing.T) {
	c, s := newTestClient(t)
	s.StubJSON("Firehose_20150804.PutRecord", http.StatusOK, map[string]any{"RecordId": "r-1", "Encrypted": true})

	out, err := c.PutRecord(context.Background(), &PutRecordInput{
		DeliveryStreamName: aws.String("clicks"),
		Record:             &Record{Data: []byte("hello\n")},
	})
	require.NoError(t, err)
	assert.Equal(t, "r-1", aws.ToString(out.RecordId))
	assert.True(t, aws.ToBool(out.Encrypted))

	body := s.LastRequest().JSON(t)
	record := body["Record"].(map[string]any)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("hello\n")), record["Data"])
}

func TestPutRecordValidation(t *testing.T) {
	c, s := newTestClient(t)

	_, err := c.PutRecord(context.Background(), &PutRecordInput{DeliveryStreamName: aws.String("clicks")})
	var ve *core.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Record", ve.Params[0].Field)

	_, err = c.PutRecordBatch(context.Background(), &PutRecordBatchInput{
		DeliveryStreamName: aws.String("clicks"),
		Records:            make([]Record, MaxBatchRecords+1),
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Records", ve.Params[0].Field)
	assert.Equal(t, "maximum 500", ve.Params[0].Reason)

	_, err = c.ListDeliveryStreams(context.Background(), &ListDeliveryStreamsInput{DeliveryStreamType: "Pull"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "DeliveryStreamType", ve.Params[0].Field)

	assert.Empty(t, s.Requests())
}

func TestListDeliveryStreamsNilInput(t *testing.T) {
	c, s := newTestClient(t)
	s.StubJSON("Firehose_20150804.ListDeliveryStreams", http.StatusOK,
		`{"DeliveryStreamNames":["a","b"],"HasMoreDeliveryStreams":false}`)

	out, err := c.ListDeliveryStreams(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, out.DeliveryStreamNames)
	assert.Equal(t, "{}", string(s.LastRequest().Body))
}

func TestErrors(t *testing.T) {
	tests := []struct {
		code   string
		status int
		check  func(t *testing.T, err error)
	}{
		{"ResourceNotFoundException", http.StatusBadRequest, func(t *testing.T, err error) {
			var e *ResourceNotFoundException
			assert.ErrorAs(t, err, &e)
		}},
		{"ResourceInUseException", http.StatusBadRequest, func(t *testing.T, err error) {
			var e *ResourceInUseException
			assert.ErrorAs(t, err, &e)
		}},
		{"LimitExceededException", http.StatusBadRequest, func(t *testing.T, err error) {
			var e *LimitExceededException
			assert.ErrorAs(t, err, &e)
		}},
		{"ConcurrentModificationException", http.StatusBadRequest, func(t *testing.T, err error) {
			var e *ConcurrentModificationException
			assert.ErrorAs(t, err, &e)
		}},
		{"ServiceUnavailableException", http.StatusServiceUnavailable, func(t *testing.T, err error) {
			var e *ServiceUnavailableException
			require.ErrorAs(t, err, &e)
			assert.Equal(t, smithy.FaultServer, e.ErrorFault())
		}},
		{"SomethingNew", http.StatusBadRequest, func(t *testing.T, err error) {
			var e *core.ServiceError
			require.ErrorAs(t, err, &e)
			assert.Equal(t, "SomethingNew", e.Code)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			c, s := newTestClient(t)
			s.HandleJSON("Firehose_20150804.DeleteDeliveryStream", func(w http.ResponseWriter, _ *http.Request) {
				awstest.WriteError(w, tt.status, tt.code, "boom")
			})
			_, err := c.DeleteDeliveryStream(context.Background(), &DeleteDeliveryStreamInput{
				DeliveryStreamName: aws.String("clicks"),
			})
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestInvalidKMSResourceException(t *testing.T) {
	c, s := newTestClient(t)
	s.StubJSON("Firehose_20150804.StartDeliveryStreamEncryption", http.StatusBadRequest,
		`{"__type":"InvalidKMSResourceException","code":"KMS.NotFoundException","message":"key gone"}`)

	_, err := c.StartDeliveryStreamEncryption(context.Background(), &StartDeliveryStreamEncryptionInput{
		DeliveryStreamName: aws.String("clicks"),
		DeliveryStreamEncryptionConfigurationInput: &DeliveryStreamEncryptionConfigurationInput{
			KeyType: KeyTypeCustomerManagedCmk,
			KeyARN:  aws.String("arn:aws:kms:us-east-1:123456789012:key/x"),
		},
	})
	var e *InvalidKMSResourceException
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "KMS.NotFoundException", e.KMSCode)
	assert.Equal(t, "key gone", e.ErrorMessage())
}

func TestParseEnums(t *testing.T) {
	v, err := ParseDeliveryStreamStatus("CREATING_FAILED")
	require.NoError(t, err)
	assert.Equal(t, DeliveryStreamStatusCreatingFailed, v)

	_, err = ParseKeyType("aws_owned_cmk")
	var ee *core.EnumError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "KeyType", ee.Enum)

	assert.Len(t, DeliveryStreamFailureType("").Values(), 15)
}

func TestUnknownResponseEnumPreserved(t *testing.T) {
	c, s := newTestClient(t)
	s.StubJSON("Firehose_20150804.DescribeDeliveryStream", http.StatusOK,
		`{"DeliveryStreamDescription":{"DeliveryStreamName":"x","DeliveryStreamStatus":"SUSPENDED"}}`)

	out, err := c.DescribeDeliveryStream(context.Background(), &DescribeDeliveryStreamInput{DeliveryStreamName: aws.String("x")})
	require.NoError(t, err)
	assert.Equal(t, DeliveryStreamStatus("SUSPENDED"), out.DeliveryStreamDescription.DeliveryStreamStatus)
}
