package kernel

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// Carrier is a parcel-delivery company with its own label software and manifest format.
type Carrier string

const (
	CarrierYamato    Carrier = "YAMATO"     // ヤマト運輸
	CarrierSagawa    Carrier = "SAGAWA"     // 佐川急便
	CarrierFukuyama  Carrier = "FUKUYAMA"   // 福山通運
	CarrierJapanPost Carrier = "JAPAN_POST" // 日本郵便
)

var carrierSlugs = map[Carrier]string{
	CarrierYamato:    "yamato",
	CarrierSagawa:    "sagawa",
	CarrierFukuyama:  "fukuyama",
	CarrierJapanPost: "japanpost",
}

// Carriers returns every supported carrier in a stable order.
func Carriers() []Carrier {
	return []Carrier{CarrierSagawa, CarrierYamato, CarrierFukuyama, CarrierJapanPost}
}

// ParseCarrier accepts the upper-case code, case-insensitively.
func ParseCarrier(s string) (Carrier, error) {
	c := Carrier(strings.ToUpper(strings.TrimSpace(s)))
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

// Validate rejects codes outside the supported set.
func (c Carrier) Validate() error {
	if _, ok := carrierSlugs[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("carrier", fmt.Errorf("%q is not a supported carrier", string(c)))
	}
	return nil
}

// Slug is the lower-case name used in manifest file names, e.g. "japanpost".
func (c Carrier) Slug() string {
	if slug, ok := carrierSlugs[c]; ok {
		return slug
	}
	return strings.ToLower(string(c))
}

func (c Carrier) String() string {
	return string(c)
}

// ServiceType is a carrier's named product tier.
type ServiceType string

const (
	ServiceYamatoTakkyubin ServiceType = "YAMATO_TAKKYUBIN" // 宅急便
	ServiceYamatoCompact   ServiceType = "YAMATO_COMPACT"   // 宅急便コンパクト
	ServiceYamatoNekopos   ServiceType = "YAMATO_NEKOPOS"   // ネコポス
	ServiceYamatoCool      ServiceType = "YAMATO_COOL"      // クール宅急便

	ServiceSagawaHikyaku ServiceType = "SAGAWA_HIKYAKU" // 飛脚宅配便
	ServiceSagawaLarge   ServiceType = "SAGAWA_LARGE"   // 飛脚ラージサイズ宅配便
	ServiceSagawaCool    ServiceType = "SAGAWA_COOL"    // 飛脚クール便

	ServiceFukuyamaCargo  ServiceType = "FUKUYAMA_CARGO"   // カーゴ便
	ServiceFukuyamaPallet ServiceType = "FUKUYAMA_PALETTE" // パレット便

	ServiceJapanPostYuPack    ServiceType = "JAPANPOST_YUPACK"    // ゆうパック
	ServiceJapanPostClickPost ServiceType = "JAPANPOST_CLICKPOST" // クリックポスト
)

var serviceCarriers = map[ServiceType]Carrier{
	ServiceYamatoTakkyubin:    CarrierYamato,
	ServiceYamatoCompact:      CarrierYamato,
	ServiceYamatoNekopos:      CarrierYamato,
	ServiceYamatoCool:         CarrierYamato,
	ServiceSagawaHikyaku:      CarrierSagawa,
	ServiceSagawaLarge:        CarrierSagawa,
	ServiceSagawaCool:         CarrierSagawa,
	ServiceFukuyamaCargo:      CarrierFukuyama,
	ServiceFukuyamaPallet:     CarrierFukuyama,
	ServiceJapanPostYuPack:    CarrierJapanPost,
	ServiceJapanPostClickPost: CarrierJapanPost,
}

var standardServices = map[Carrier]ServiceType{
	CarrierYamato:    ServiceYamatoTakkyubin,
	CarrierSagawa:    ServiceSagawaHikyaku,
	CarrierFukuyama:  ServiceFukuyamaCargo,
	CarrierJapanPost: ServiceJapanPostYuPack,
}

// StandardService is the tier used when an operator picks a carrier without naming a service.
func StandardService(c Carrier) (ServiceType, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}
	return standardServices[c], nil
}

// ParseServiceType accepts the upper-case code, case-insensitively.
func ParseServiceType(s string) (ServiceType, error) {
	st := ServiceType(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := serviceCarriers[st]; !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("serviceType", fmt.Errorf("%q is not a supported service type", s))
	}
	return st, nil
}

// Carrier returns the carrier offering the service, or "" for unknown services.
func (s ServiceType) Carrier() Carrier {
	return serviceCarriers[s]
}

// ValidateFor checks that the service is offered by carrier c.
func (s ServiceType) ValidateFor(c Carrier) error {
	owner, ok := serviceCarriers[s]
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause("serviceType", fmt.Errorf("%q is not a supported service type", string(s)))
	}
	if owner != c {
		return errs.NewValueIsInvalidErrorWithCause(
			"serviceType",
			fmt.Errorf("%s is offered by %s, not %s", s, owner, c),
		)
	}
	return nil
}

func (s ServiceType) String() string {
	return string(s)
}
