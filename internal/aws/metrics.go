package aws

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

// metricNamespace groups all order metrics in CloudWatch.
const metricNamespace = "CampusQuick/Orders"

// Metrics publishes order metrics to CloudWatch.
type Metrics struct {
	CloudWatch CloudWatchAPI
	nowFunc    func() time.Time
}

// NewMetrics returns a Metrics emitter.
func NewMetrics(cwClient CloudWatchAPI) *Metrics {
	return &Metrics{
		CloudWatch: cwClient,
		nowFunc:    time.Now,
	}
}

// RecordOrderPlaced emits one OrdersPlaced count and the order total as a value metric.
func (m *Metrics) RecordOrderPlaced(ctx context.Context, orderTotal float64) error {
	now := m.nowFunc()
	input := &cloudwatch.PutMetricDataInput{
		Namespace: awsString(metricNamespace),
		MetricData: []cwtypes.MetricDatum{
			{
				MetricName: awsString("OrdersPlaced"),
				Timestamp:  &now,
				Unit:       cwtypes.StandardUnitCount,
				Value:      awsFloat64(1),
			},
			{
				MetricName: awsString("OrderTotal"),
				Timestamp:  &now,
				Unit:       cwtypes.StandardUnitNone,
				Value:      awsFloat64(orderTotal),
			},
		},
	}

	if _, err := m.CloudWatch.PutMetricData(ctx, input); err != nil {
		return fmt.Errorf("put metric data: %w", err)
	}
	return nil
}

func awsFloat64(f float64) *float64 { return &f }
