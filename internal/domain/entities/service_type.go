package entities

import (
	"errors"
	"strings"
)

var ErrUnknownServiceType = errors.New("unknown service type")

// ServiceType is the product variant a customer pays for.
type ServiceType string

const (
	ServiceTypeFaceAnalysis            ServiceType = "face-analysis"
	ServiceTypeProfessionalPhysiognomy ServiceType = "professional-physiognomy"
	ServiceTypeMBTIFace                ServiceType = "mbti-face"
	ServiceTypeFaceSaju                ServiceType = "face-saju"
	ServiceTypeFortune                 ServiceType = "fortune"
	ServiceTypeSaju                    ServiceType = "saju"
	ServiceTypeIdealType               ServiceType = "ideal-type"
)

// AllServiceTypes lists the offerings in catalog order.
var AllServiceTypes = []ServiceType{
	ServiceTypeFaceAnalysis,
	ServiceTypeProfessionalPhysiognomy,
	ServiceTypeMBTIFace,
	ServiceTypeFaceSaju,
	ServiceTypeFortune,
	ServiceTypeSaju,
	ServiceTypeIdealType,
}

// ParseServiceType accepts the catalog value case-insensitively, with '_' or '-' separators.
func ParseServiceType(s string) (ServiceType, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for _, st := range AllServiceTypes {
		if string(st) == normalized {
			return st, nil
		}
	}
	return "", ErrUnknownServiceType
}

func (s ServiceType) Valid() bool {
	for _, st := range AllServiceTypes {
		if st == s {
			return true
		}
	}
	return false
}

var serviceDisplayNames = map[ServiceType]string{
	ServiceTypeFaceAnalysis:            "AI 관상 분석",
	ServiceTypeProfessionalPhysiognomy: "전문 관상",
	ServiceTypeMBTIFace:                "MBTI 관상",
	ServiceTypeFaceSaju:                "관상 사주",
	ServiceTypeFortune:                 "운세",
	ServiceTypeSaju:                    "사주",
	ServiceTypeIdealType:               "이상형 분석",
}

// DisplayName is the Korean product name shown to customers and operators.
func (s ServiceType) DisplayName() string {
	if name, ok := serviceDisplayNames[s]; ok {
		return name
	}
	return string(s)
}
