package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"logistics/internal/core/domain/model/shipper"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

const (
	defaultManifestWorkers           = 4
	defaultShipmentCreationSchedule  = "0 * * * * *"
	defaultShipmentCreationBatchSize = 50
	defaultCarrierStatsSchedule      = "0 0 * * * *"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	ShipperName       string
	ShipperPhone      string
	ShipperZipCode    string
	ShipperPrefecture string
	ShipperCity       string
	ShipperAddress    string

	// Zero values keep the router defaults.
	RemotePrefectures []string
	DefaultItemWeight int
	SmallParcelWeight int
	CODCompactWeight  int
	B2BPalletWeight   int
	OversizedWeight   int

	// Schedules are six-field cron expressions; "off" disables the job.
	ManifestWorkers           int
	ShipmentCreationSchedule  string
	ShipmentCreationBatchSize int
	CarrierStatsSchedule      string
}

// ConfigFromEnv reads the configuration through getenv, typically os.Getenv.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	var errList []error
	intVar := func(key string, fallback int) int {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return fallback
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(key, err))
			return fallback
		}
		if v < 0 {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(key, fmt.Errorf("%d is negative", v)))
			return fallback
		}
		return v
	}
	stringVar := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	config := Config{
		HTTPPort:   stringVar("HTTP_PORT", "8080"),
		DBHost:     getenv("DB_HOST"),
		DBPort:     stringVar("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER"),
		DBPassword: getenv("DB_PASSWORD"),
		DBName:     getenv("DB_NAME"),
		DBSslMode:  stringVar("DB_SSLMODE", "disable"),

		ShipperName:       getenv("SHIPPER_NAME"),
		ShipperPhone:      getenv("SHIPPER_PHONE"),
		ShipperZipCode:    getenv("SHIPPER_ZIP_CODE"),
		ShipperPrefecture: getenv("SHIPPER_PREFECTURE"),
		ShipperCity:       getenv("SHIPPER_CITY"),
		ShipperAddress:    getenv("SHIPPER_ADDRESS"),

		RemotePrefectures: splitList(getenv("ROUTING_REMOTE_PREFECTURES")),
		DefaultItemWeight: intVar("ROUTING_DEFAULT_ITEM_WEIGHT", 0),
		SmallParcelWeight: intVar("ROUTING_SMALL_PARCEL_WEIGHT", 0),
		CODCompactWeight:  intVar("ROUTING_COD_COMPACT_WEIGHT", 0),
		B2BPalletWeight:   intVar("ROUTING_B2B_PALLET_WEIGHT", 0),
		OversizedWeight:   intVar("ROUTING_OVERSIZED_WEIGHT", 0),

		ManifestWorkers:           intVar("MANIFEST_WORKERS", defaultManifestWorkers),
		ShipmentCreationSchedule:  stringVar("SHIPMENT_CREATION_SCHEDULE", defaultShipmentCreationSchedule),
		ShipmentCreationBatchSize: intVar("SHIPMENT_CREATION_BATCH_SIZE", defaultShipmentCreationBatchSize),
		CarrierStatsSchedule:      stringVar("CARRIER_STATS_SCHEDULE", defaultCarrierStatsSchedule),
	}

	return config, errors.Join(errList...)
}

// DSN is the lib/pq style connection string for gorm's postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) ShipperProfile() (shipper.Profile, error) {
	return shipper.NewProfile(c.ShipperName, c.ShipperPhone, c.ShipperZipCode,
		c.ShipperPrefecture, c.ShipperCity, c.ShipperAddress)
}

// RoutingThresholds overlays the configured values on services.DefaultRoutingThresholds.
func (c Config) RoutingThresholds() services.RoutingThresholds {
	t := services.DefaultRoutingThresholds()
	if len(c.RemotePrefectures) > 0 {
		t.RemotePrefectures = c.RemotePrefectures
	}
	if c.DefaultItemWeight > 0 {
		t.Defaults.WeightGrams = c.DefaultItemWeight
	}
	if c.SmallParcelWeight > 0 {
		t.SmallParcelWeight = c.SmallParcelWeight
	}
	if c.CODCompactWeight > 0 {
		t.CODCompactWeight = c.CODCompactWeight
	}
	if c.B2BPalletWeight > 0 {
		t.B2BPalletWeight = c.B2BPalletWeight
	}
	if c.OversizedWeight > 0 {
		t.OversizedWeight = c.OversizedWeight
	}
	return t
}

// scheduleEnabled is false for the schedule "off".
func scheduleEnabled(schedule string) bool {
	return !strings.EqualFold(schedule, "off")
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
