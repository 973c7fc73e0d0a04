package mocks

import "github.com/lucasvillarinho/sqlsession/database/drivers"

type MockDriverFactory struct {
	MockDriver drivers.Driver
	Error      error
	Requested  []drivers.DriverType
}

func (m *MockDriverFactory) GetDriver(driverType drivers.DriverType) (drivers.Driver, error) {
	m.Requested = append(m.Requested, driverType)
	if m.Error != nil {
		return nil, m.Error
	}
	return m.MockDriver, nil
}
