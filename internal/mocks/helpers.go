package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockQuerierForTest creates a new mock Querier for testing
func NewMockQuerierForTest(t *testing.T) *MockQuerier {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockQuerier(ctrl)
}

// NewMockVehicleRegistryForTest creates a new mock VehicleRegistry for testing
func NewMockVehicleRegistryForTest(t *testing.T) *MockVehicleRegistry {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockVehicleRegistry(ctrl)
}

// NewMockPersonRegistryForTest creates a new mock PersonRegistry for testing
func NewMockPersonRegistryForTest(t *testing.T) *MockPersonRegistry {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockPersonRegistry(ctrl)
}

// NewMockPaymentPlatformForTest creates a new mock PaymentPlatform for testing
func NewMockPaymentPlatformForTest(t *testing.T) *MockPaymentPlatform {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockPaymentPlatform(ctrl)
}

// NewMockEmailSenderForTest creates a new mock EmailSender for testing
func NewMockEmailSenderForTest(t *testing.T) *MockEmailSender {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockEmailSender(ctrl)
}
