package setups

// PicoDHT11 is a Pico with a DHT11 on GP15 and a 128x64 SSD1306 on i2c0.
var PicoDHT11 = Plan{
	Name:    "pico_dht11",
	I2C:     I2CPlan{ID: "i2c0", SDA: 4, SCL: 5, Hz: 400_000},
	Display: DisplayPlan{Addr: 0x3C, Width: 128, Height: 64},
	Sensor:  SensorPlan{Type: SensorDHT11, Pin: 15},
	Console: UARTPlan{ID: "uart0", TX: 0, RX: 1, Baud: 115_200},
}

// PicoAHT20 replaces the DHT11 with an AHT20 sharing the display's bus.
var PicoAHT20 = Plan{
	Name:    "pico_aht20",
	I2C:     I2CPlan{ID: "i2c0", SDA: 4, SCL: 5, Hz: 400_000},
	Display: DisplayPlan{Addr: 0x3C, Width: 128, Height: 64},
	Sensor:  SensorPlan{Type: SensorAHT20, Addr: 0x38},
	Console: UARTPlan{ID: "uart0", TX: 0, RX: 1, Baud: 115_200},
}

// Selected is the plan the firmware boots with; build tags may replace it.
var Selected = PicoDHT11
