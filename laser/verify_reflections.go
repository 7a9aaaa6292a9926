//go:build verify_reflections
// +build verify_reflections

package laser

import (
	"fmt"
	"math"

	"github.com/fogleman/pt/pt"
)

// Constants for verification
const (
	lengthEpsilon = 1e-7
	angleEpsilon  = 1e-7
)

func init() {
	fmt.Println("Reflection verification enabled.")
}

func verifyReflectionLaw(incident, normal, reflected pt.Vector) {
	// Angle of incidence should equal angle of reflection
	incidentAngle := math.Acos(math.Min(1, math.Abs(incident.Dot(normal))))
	reflectedAngle := math.Acos(math.Min(1, math.Abs(reflected.Dot(normal))))
	if math.Abs(incidentAngle-reflectedAngle) > angleEpsilon {
		panic(fmt.Sprintf("angle of incidence %f does not match angle of reflection %f", incidentAngle, reflectedAngle))
	}

	// The reflected ray must leave on the side the incident ray came from
	if incident.Dot(normal)*reflected.Dot(normal) > 0 {
		panic("reflected ray passes through the mirror")
	}

	if math.Abs(reflected.Length()-1.0) > lengthEpsilon {
		panic("reflected direction is not normalized")
	}
}
