package trunks

import (
	"strings"

	"github.com/jhoicas/Trunks-api/internal/application/dto"
	"github.com/jhoicas/Trunks-api/internal/domain"
	"github.com/jhoicas/Trunks-api/internal/domain/entity"
)

func requiredString(field string, v *string) (string, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return "", domain.Required(field)
	}
	return strings.TrimSpace(*v), nil
}

func positiveInt(field string, v *int) (int, error) {
	if v == nil {
		return 0, domain.Required(field)
	}
	if *v <= 0 {
		return 0, domain.Invalid(field, "debe ser un entero positivo")
	}
	return *v, nil
}

func requiredID(field string, v *int64) (int64, error) {
	if v == nil {
		return 0, domain.Required(field)
	}
	return *v, nil
}

// optionalString devuelve def cuando v es nil o vacío.
func optionalString(v *string, def string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return def
	}
	return strings.TrimSpace(*v)
}

// trunkFields campos comunes a NSO y VNO ya validados.
type trunkFields struct {
	serviceID   string
	pilotNumber string
	channels    int
	areaCode    string
}

func validateTrunk(in dto.NSOTrunkRequest) (trunkFields, error) {
	var (
		f   trunkFields
		err error
	)
	if f.serviceID, err = requiredString("serviceId", in.ServiceID); err != nil {
		return f, err
	}
	if f.pilotNumber, err = requiredString("pilotNumber", in.PilotNumber); err != nil {
		return f, err
	}
	if f.channels, err = positiveInt("channels", in.Channels); err != nil {
		return f, err
	}
	if f.areaCode, err = requiredString("areaCode", in.AreaCode); err != nil {
		return f, err
	}
	return f, nil
}

func validateCustomer(in dto.CustomerRequest) (name, email string, err error) {
	if name, err = requiredString("name", in.Name); err != nil {
		return "", "", err
	}
	if email, err = requiredString("email", in.Email); err != nil {
		return "", "", err
	}
	if !strings.Contains(email, "@") {
		return "", "", domain.Invalid("email", "no es un email válido")
	}
	return name, email, nil
}

func validateMapping(in dto.TrunkMappingRequest) (nsoID, vnoID int64, allocated int, err error) {
	if nsoID, err = requiredID("nsoTrunkId", in.NSOTrunkID); err != nil {
		return
	}
	if vnoID, err = requiredID("vnoTrunkId", in.VNOTrunkID); err != nil {
		return
	}
	allocated, err = positiveInt("allocatedChannels", in.AllocatedChannels)
	return
}

func validateDID(in dto.DIDRequest) (number string, trunkID int64, trunkType string, err error) {
	if number, err = requiredString("didNumber", in.DIDNumber); err != nil {
		return
	}
	if trunkID, err = requiredID("trunkId", in.TrunkID); err != nil {
		return
	}
	if trunkType, err = requiredString("trunkType", in.TrunkType); err != nil {
		return
	}
	trunkType = strings.ToUpper(trunkType)
	if !entity.ValidTrunkType(trunkType) {
		err = domain.Invalid("trunkType", "debe ser NSO o VNO")
	}
	return
}

// normalizePhone convierte "" en nil.
func normalizePhone(v *string) *string {
	if v == nil {
		return nil
	}
	p := strings.TrimSpace(*v)
	if p == "" {
		return nil
	}
	return &p
}
