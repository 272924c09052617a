// Package shipping resolves shipping options and fees for Philippine
// destinations from compiled-in rate tables.
package shipping

// DomesticCountry is the only country resolved against the domestic table.
const DomesticCountry = "Philippines"

// Default base rates used when no record matches the destination.
const (
	DefaultStandardRate = 150
	DefaultExpressRate  = 250
)

const (
	DefaultStandardDays = "5-7 business days"
	DefaultExpressDays  = "2-3 business days"
)

type EstimatedDays struct {
	Standard  string `json:"standard" yaml:"standard"`
	Express   string `json:"express" yaml:"express"`
	Overnight string `json:"overnight,omitempty" yaml:"overnight,omitempty"`
}

// ShippingRate is one row of the domestic table. Cities is not exhaustive:
// an unlisted city still resolves through its province.
type ShippingRate struct {
	Region        string        `json:"region" yaml:"region"`
	Province      string        `json:"province" yaml:"province"`
	Cities        []string      `json:"cities" yaml:"cities"`
	StandardRate  int           `json:"standard_rate" yaml:"standard_rate"`
	ExpressRate   int           `json:"express_rate" yaml:"express_rate"`
	OvernightRate int           `json:"overnight_rate,omitempty" yaml:"overnight_rate,omitempty"`
	EstimatedDays EstimatedDays `json:"estimated_days" yaml:"estimated_days"`
}

// OffersOvernight reports whether the location has an overnight service.
func (r ShippingRate) OffersOvernight() bool {
	return r.OvernightRate > 0
}

func (r ShippingRate) clone() ShippingRate {
	cities := make([]string, len(r.Cities))
	copy(cities, r.Cities)
	r.Cities = cities
	return r
}

var (
	metroDays    = EstimatedDays{Standard: "1-2 business days", Express: "Same day", Overnight: "Next day"}
	luzonDays    = EstimatedDays{Standard: "3-5 business days", Express: "1-2 business days", Overnight: "Next day"}
	farLuzonDays = EstimatedDays{Standard: "5-7 business days", Express: "3-4 business days"}
	visayasDays  = EstimatedDays{Standard: "3-5 business days", Express: "1-2 business days", Overnight: "Next day"}
	farVisDays   = EstimatedDays{Standard: "5-7 business days", Express: "2-4 business days"}
	mindanaoDays = EstimatedDays{Standard: "4-6 business days", Express: "2-3 business days", Overnight: "Next day"}
	farMinDays   = EstimatedDays{Standard: "7-10 business days", Express: "4-5 business days"}
)

var domesticRates = []ShippingRate{
	// NCR
	{
		Region:   "NCR",
		Province: "Metro Manila",
		Cities: []string{
			"Manila", "Quezon City", "Makati", "Taguig", "Pasig", "Mandaluyong", "San Juan",
			"Pasay", "Paranaque", "Las Pinas", "Muntinlupa", "Marikina", "Caloocan",
			"Malabon", "Navotas", "Valenzuela", "Pateros",
		},
		StandardRate: 100, ExpressRate: 180, OvernightRate: 250,
		EstimatedDays: metroDays,
	},

	// Luzon
	{
		Region: "Luzon", Province: "Cavite",
		Cities:       []string{"Bacoor", "Imus", "Dasmarinas", "General Trias", "Tagaytay", "Cavite City", "Trece Martires"},
		StandardRate: 120, ExpressRate: 200, OvernightRate: 300,
		EstimatedDays: luzonDays,
	},
	{
		Region: "Luzon", Province: "Laguna",
		Cities:       []string{"Santa Rosa", "Binan", "Calamba", "San Pedro", "Cabuyao", "San Pablo", "Los Banos"},
		StandardRate: 120, ExpressRate: 200, OvernightRate: 300,
		EstimatedDays: luzonDays,
	},
	{
		Region: "Luzon", Province: "Rizal",
		Cities:       []string{"Antipolo", "Cainta", "Taytay", "Binangonan", "Rodriguez", "San Mateo"},
		StandardRate: 120, ExpressRate: 200, OvernightRate: 300,
		EstimatedDays: luzonDays,
	},
	{
		Region: "Luzon", Province: "Bulacan",
		Cities:       []string{"Malolos", "Meycauayan", "San Jose del Monte", "Marilao", "Baliuag"},
		StandardRate: 120, ExpressRate: 200, OvernightRate: 300,
		EstimatedDays: luzonDays,
	},
	{
		Region: "Luzon", Province: "Batangas",
		Cities:       []string{"Batangas City", "Lipa", "Tanauan", "Santo Tomas", "Nasugbu"},
		StandardRate: 130, ExpressRate: 220, OvernightRate: 320,
		EstimatedDays: luzonDays,
	},
	{
		Region: "Luzon", Province: "Pampanga",
		Cities:       []string{"San Fernando", "Angeles", "Mabalacat", "Mexico", "Lubao"},
		StandardRate: 130, ExpressRate: 220, OvernightRate: 320,
		EstimatedDays: luzonDays,
	},
	{
		Region: "Luzon", Province: "Tarlac",
		Cities:       []string{"Tarlac City", "Concepcion", "Capas", "Paniqui"},
		StandardRate: 140, ExpressRate: 230,
		EstimatedDays: farLuzonDays,
	},
	{
		Region: "Luzon", Province: "Pangasinan",
		Cities:       []string{"Dagupan", "San Carlos", "Urdaneta", "Alaminos", "Lingayen"},
		StandardRate: 140, ExpressRate: 240, OvernightRate: 350,
		EstimatedDays: luzonDays,
	},
	{
		Region: "Luzon", Province: "Benguet",
		Cities:       []string{"Baguio", "La Trinidad", "Itogon", "Tuba"},
		StandardRate: 150, ExpressRate: 250, OvernightRate: 380,
		EstimatedDays: luzonDays,
	},
	{
		Region: "Luzon", Province: "Ilocos Norte",
		Cities:       []string{"Laoag", "Batac", "Paoay", "Pagudpud"},
		StandardRate: 160, ExpressRate: 270,
		EstimatedDays: farLuzonDays,
	},
	{
		Region: "Luzon", Province: "Cagayan",
		Cities:       []string{"Tuguegarao", "Aparri", "Lal-lo"},
		StandardRate: 170, ExpressRate: 280,
		EstimatedDays: farLuzonDays,
	},
	{
		Region: "Luzon", Province: "Albay",
		Cities:       []string{"Legazpi", "Tabaco", "Ligao", "Daraga"},
		StandardRate: 160, ExpressRate: 260, OvernightRate: 380,
		EstimatedDays: luzonDays,
	},
	{
		Region: "Luzon", Province: "Camarines Sur",
		Cities:       []string{"Naga", "Iriga", "Pili"},
		StandardRate: 160, ExpressRate: 260, OvernightRate: 380,
		EstimatedDays: luzonDays,
	},
	{
		Region: "Luzon", Province: "Palawan",
		Cities:       []string{"Puerto Princesa", "El Nido", "Coron", "Brooke's Point"},
		StandardRate: 200, ExpressRate: 320,
		EstimatedDays: farLuzonDays,
	},
	{
		Region: "Luzon", Province: "Batanes",
		Cities:       []string{"Basco", "Itbayat", "Sabtang"},
		StandardRate: 250, ExpressRate: 400,
		EstimatedDays: EstimatedDays{Standard: "10-14 business days", Express: "5-7 business days"},
	},

	// Visayas
	{
		Region: "Visayas", Province: "Cebu",
		Cities:       []string{"Cebu City", "Mandaue", "Lapu-Lapu", "Talisay", "Danao", "Toledo", "Carcar", "Naga"},
		StandardRate: 150, ExpressRate: 250, OvernightRate: 350,
		EstimatedDays: visayasDays,
	},
	{
		Region: "Visayas", Province: "Bohol",
		Cities:       []string{"Tagbilaran", "Panglao", "Tubigon", "Jagna"},
		StandardRate: 160, ExpressRate: 260, OvernightRate: 370,
		EstimatedDays: visayasDays,
	},
	{
		Region: "Visayas", Province: "Iloilo",
		Cities:       []string{"Iloilo City", "Passi", "Oton", "Pavia"},
		StandardRate: 160, ExpressRate: 260, OvernightRate: 370,
		EstimatedDays: visayasDays,
	},
	{
		Region: "Visayas", Province: "Negros Occidental",
		Cities:       []string{"Bacolod", "Silay", "Talisay", "Kabankalan", "Victorias"},
		StandardRate: 160, ExpressRate: 260, OvernightRate: 370,
		EstimatedDays: visayasDays,
	},
	{
		Region: "Visayas", Province: "Negros Oriental",
		Cities:       []string{"Dumaguete", "Bais", "Tanjay", "Bayawan"},
		StandardRate: 170, ExpressRate: 270,
		EstimatedDays: farVisDays,
	},
	{
		Region: "Visayas", Province: "Aklan",
		Cities:       []string{"Kalibo", "Malay", "Boracay"},
		StandardRate: 170, ExpressRate: 280,
		EstimatedDays: farVisDays,
	},
	{
		Region: "Visayas", Province: "Leyte",
		Cities:       []string{"Tacloban", "Ormoc", "Baybay", "Palo"},
		StandardRate: 170, ExpressRate: 280, OvernightRate: 390,
		EstimatedDays: visayasDays,
	},
	{
		Region: "Visayas", Province: "Samar",
		Cities:       []string{"Catbalogan", "Calbayog"},
		StandardRate: 190, ExpressRate: 300,
		EstimatedDays: farVisDays,
	},

	// Mindanao
	{
		Region: "Mindanao", Province: "Davao del Sur",
		Cities:       []string{"Davao City", "Digos", "Santa Cruz", "Bansalan"},
		StandardRate: 180, ExpressRate: 290, OvernightRate: 400,
		EstimatedDays: mindanaoDays,
	},
	{
		Region: "Mindanao", Province: "Davao del Norte",
		Cities:       []string{"Tagum", "Panabo", "Island Garden City of Samal"},
		StandardRate: 180, ExpressRate: 290,
		EstimatedDays: farMinDays,
	},
	{
		Region: "Mindanao", Province: "Misamis Oriental",
		Cities:       []string{"Cagayan de Oro", "Gingoog", "El Salvador", "Opol"},
		StandardRate: 180, ExpressRate: 290, OvernightRate: 400,
		EstimatedDays: mindanaoDays,
	},
	{
		Region: "Mindanao", Province: "Bukidnon",
		Cities:       []string{"Malaybalay", "Valencia", "Manolo Fortich"},
		StandardRate: 190, ExpressRate: 300,
		EstimatedDays: farMinDays,
	},
	{
		Region: "Mindanao", Province: "Zamboanga del Sur",
		Cities:       []string{"Zamboanga City", "Pagadian"},
		StandardRate: 190, ExpressRate: 300, OvernightRate: 420,
		EstimatedDays: mindanaoDays,
	},
	{
		Region: "Mindanao", Province: "South Cotabato",
		Cities:       []string{"General Santos", "Koronadal", "Polomolok"},
		StandardRate: 190, ExpressRate: 300, OvernightRate: 420,
		EstimatedDays: mindanaoDays,
	},
	{
		Region: "Mindanao", Province: "Agusan del Norte",
		Cities:       []string{"Butuan", "Cabadbaran"},
		StandardRate: 190, ExpressRate: 300,
		EstimatedDays: farMinDays,
	},
	{
		Region: "Mindanao", Province: "Surigao del Norte",
		Cities:       []string{"Surigao City", "Siargao", "General Luna"},
		StandardRate: 200, ExpressRate: 320,
		EstimatedDays: farMinDays,
	},
	{
		Region: "Mindanao", Province: "Sulu",
		Cities:       []string{"Jolo", "Patikul"},
		StandardRate: 250, ExpressRate: 400,
		EstimatedDays: EstimatedDays{Standard: "10-14 business days", Express: "5-7 business days"},
	},
	{
		Region: "Mindanao", Province: "Tawi-Tawi",
		Cities:       []string{"Bongao", "Sitangkai"},
		StandardRate: 250, ExpressRate: 400,
		EstimatedDays: EstimatedDays{Standard: "10-14 business days", Express: "5-7 business days"},
	},
}

// Rates returns a copy of the domestic table in table order.
func Rates() []ShippingRate {
	out := make([]ShippingRate, len(domesticRates))
	for i, r := range domesticRates {
		out[i] = r.clone()
	}
	return out
}

// Provinces lists every province in table order.
func Provinces() []string {
	out := make([]string, len(domesticRates))
	for i, r := range domesticRates {
		out[i] = r.Province
	}
	return out
}

// CitiesOf returns the listed cities of a province. ok is false for an
// unknown province.
func CitiesOf(province string) (cities []string, ok bool) {
	for _, r := range domesticRates {
		if sameName(r.Province, province) {
			return r.clone().Cities, true
		}
	}
	return nil, false
}
