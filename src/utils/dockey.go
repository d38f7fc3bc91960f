package utils

import (
	"regexp"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// KeyKind indica la forma del _id de un documento.
type KeyKind int

const (
	KeyObjectID KeyKind = iota // 24 caracteres hexadecimales
	KeyInt                     // solo dígitos decimales
	KeyOpaque                  // cualquier otro string
)

// DocKey es la clave de búsqueda ya normalizada. Las colecciones guardan
// _id de tres formas (ObjectID, entero, string), así que el valor viene
// etiquetado con su tipo en vez de depender de un any suelto.
type DocKey struct {
	Kind KeyKind
	OID  primitive.ObjectID
	Num  int64
	Raw  string
}

var hex24 = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// ParseDocKey clasifica el segmento de URL y lo convierte a la clave nativa:
// 24 hex -> ObjectID, solo dígitos -> entero, caso general -> el string tal cual.
// Nunca falla: un id que no corresponde a ningún documento simplemente no
// encuentra nada.
func ParseDocKey(value string) DocKey {
	value = strings.TrimSpace(value)

	if hex24.MatchString(value) {
		oid, err := primitive.ObjectIDFromHex(value)
		if err == nil {
			return DocKey{Kind: KeyObjectID, OID: oid, Raw: value}
		}
	}

	if value != "" && esSoloDigitos(value) {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return DocKey{Kind: KeyInt, Num: n, Raw: value}
		}
		// demasiado largo para int64: se trata como string
	}

	return DocKey{Kind: KeyOpaque, Raw: value}
}

func esSoloDigitos(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Value devuelve el valor a usar en un filtro bson.M{"_id": ...}.
func (k DocKey) Value() any {
	switch k.Kind {
	case KeyObjectID:
		return k.OID
	case KeyInt:
		return k.Num
	default:
		return k.Raw
	}
}

// String devuelve la forma usable en una URL.
func (k DocKey) String() string {
	switch k.Kind {
	case KeyObjectID:
		return k.OID.Hex()
	case KeyInt:
		return strconv.FormatInt(k.Num, 10)
	default:
		return k.Raw
	}
}

// KeyString convierte un _id decodificado de Mongo (ObjectID, entero o string)
// a su forma de URL. Se registra como helper de plantillas para armar enlaces.
func KeyString(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case nil:
		return ""
	default:
		return ""
	}
}
