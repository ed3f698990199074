package hydro

// Loadcase describes the fluid the vessel floats in and, optionally, the
// vertical center of gravity of the loaded vessel. It is immutable per
// calculation call.
type Loadcase struct {
	Rho float64  `json:"rho"`          // fluid density, kg/m³
	KG  *float64 `json:"kg,omitempty"` // vertical center of gravity above keel, m
}

// Result holds the hydrostatic properties of the hull at a single draft.
// All lengths are meters, volumes m³, weights kg, consistent with the
// input geometry and loadcase; no unit conversion happens in the engine.
type Result struct {
	Draft float64 `json:"draft"`

	// Displacement
	Volume       float64 `json:"volume"`       // displaced volume, m³
	Displacement float64 `json:"displacement"` // displaced weight, kg

	// Centers of buoyancy
	KB  float64 `json:"kb"`  // vertical center of buoyancy above keel
	LCB float64 `json:"lcb"` // longitudinal center of buoyancy
	TCB float64 `json:"tcb"` // transverse center of buoyancy (0 for a symmetric hull)

	// Waterplane properties
	Awp  float64 `json:"awp"`  // waterplane area, m²
	LCF  float64 `json:"lcf"`  // longitudinal center of flotation
	Iwp  float64 `json:"iwp"`  // transverse second moment of the waterplane, m⁴
	IwpL float64 `json:"iwpl"` // longitudinal second moment about the LCF, m⁴

	// Metacentric data
	BMt float64  `json:"bmt"`           // transverse metacentric radius
	BMl float64  `json:"bml"`           // longitudinal metacentric radius
	GMt *float64 `json:"gmt,omitempty"` // transverse metacentric height (needs KG)
	GMl *float64 `json:"gml,omitempty"` // longitudinal metacentric height (needs KG)

	// Midship section
	MidshipArea float64 `json:"midshipArea"` // immersed midship section area, m²

	// Form coefficients
	Cb  float64 `json:"cb"`  // block
	Cp  float64 `json:"cp"`  // prismatic
	Cm  float64 `json:"cm"`  // midship
	Cwp float64 `json:"cwp"` // waterplane
}
