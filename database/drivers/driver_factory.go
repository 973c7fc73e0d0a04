package drivers

import "fmt"

type DriverType string

const (
	// DriverMySQL "github.com/go-sql-driver/mysql".
	DriverMySQL DriverType = "mysql"

	// DriverPostgres "github.com/lib/pq".
	DriverPostgres DriverType = "postgres"

	// DriverMattn "github.com/mattn/go-sqlite3".
	DriverMattn DriverType = "mattn"

	// DriverModernc "modernc.org/sqlite".
	DriverModernc DriverType = "modernc"
)

// Factory returns the dialect registered for a driver type.
type Factory interface {
	GetDriver(driverType DriverType) (Driver, error)
}

// DriverFactory is a factory for creating new instances of drivers.
type DriverFactory struct {
	drivers map[DriverType]func() Driver
}

// NewDriverFactory creates a new instance of DriverFactory.
func NewDriverFactory() *DriverFactory {
	return &DriverFactory{
		drivers: map[DriverType]func() Driver{
			DriverMySQL:    NewMySQLDriver,
			DriverPostgres: NewPostgresDriver,
			DriverMattn:    NewMattnDriver,
			DriverModernc:  NewModerncDriver,
		},
	}
}

// GetDriver returns a new instance of the specified driver.
// The driver type must be one of the supported driver types.
//
// Parameters:
// - driverType: The type of the driver to create.
//
// Supported driver types:
// - DriverMySQL: "github.com/go-sql-driver/mysql".
// - DriverPostgres: "github.com/lib/pq".
// - DriverMattn: "github.com/mattn/go-sqlite3".
// - DriverModernc: "modernc.org/sqlite".
//
// Returns:
// - Driver: The new driver instance.
// - error: An error if the driver type is not supported.
func (f *DriverFactory) GetDriver(driverType DriverType) (Driver, error) {
	constructor, exists := f.drivers[driverType]
	if !exists {
		return nil, fmt.Errorf("unknown driver type: %s", driverType)
	}
	return constructor(), nil
}
