package constants

// Worker Bee
const (
	// WorkerHomeX, WorkerHomeY is where the worker starts and returns to
	WorkerHomeX = 50.0
	WorkerHomeY = 50.0

	// WorkerSpeed is the distance covered per tick
	WorkerSpeed = 5.0
)

// Drone Bee
const (
	DroneStartX = 20.0
	DroneStartY = 20.0
	DroneSpeed  = 3.0

	// DroneHeadingPeriod is the number of ticks flown on one heading
	DroneHeadingPeriod = 4
)

// Display names, also used as the console labels
const (
	WorkerName = "WorkerBee"
	DroneName  = "DroneBee"
)
