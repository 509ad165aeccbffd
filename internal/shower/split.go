package shower

import "math"

// Split divides a parton's momentum p0 into two daughter momenta. The
// daughter carrying energy fraction z leaves at in-plane angle
// theta0+theta with azimuth phi; the other carries 1-z at theta0-theta
// with azimuth phi+pi.
//
// Each daughter is rebuilt as (m cos a, m sin a, m sin phi). The z
// component reuses the full magnitude rather than a spherical
// decomposition; this toy projection is kept as-is because it is what
// shapes the jets.
func Split(p0 Momentum, z, theta0, theta, phi float64) (Momentum, Momentum) {
	mag := p0.Norm()

	magA := mag * z
	magB := mag * (1 - z)
	thetaA := theta0 + theta
	thetaB := theta0 - theta
	phiA := phi
	phiB := phi + math.Pi

	pa := Momentum{
		X: magA * math.Cos(thetaA),
		Y: magA * math.Sin(thetaA),
		Z: magA * math.Sin(phiA),
	}
	pb := Momentum{
		X: magB * math.Cos(thetaB),
		Y: magB * math.Sin(thetaB),
		Z: magB * math.Sin(phiB),
	}
	return pa, pb
}
