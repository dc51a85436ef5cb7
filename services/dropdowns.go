package services

// CarBrands returns the vehicle brand options, alphabetically sorted.
var CarBrands = []string{
	"Alfa Romeo",
	"Audi",
	"BAIC",
	"BMW",
	"BYD",
	"Changan",
	"Chery",
	"Chevrolet",
	"Citroën",
	"Dodge",
	"Fiat",
	"Ford",
	"Great Wall",
	"Honda",
	"Hyundai",
	"JAC",
	"Jeep",
	"Kia",
	"Land Rover",
	"Lexus",
	"Mazda",
	"Mercedes-Benz",
	"Mitsubishi",
	"Nissan",
	"Opel",
	"Peugeot",
	"Renault",
	"SsangYong",
	"Subaru",
	"Suzuki",
	"Tesla",
	"Toyota",
	"Volkswagen",
	"Volvo",
}
