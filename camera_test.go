package stairloop

import "testing"

func TestDefaultCamera(t *testing.T) {
	cam := DefaultCamera()
	if cam.Name != "perspective_stairs_cam" {
		t.Errorf("name = %q", cam.Name)
	}
	if !cam.Locked {
		t.Error("camera must be locked")
	}
	if cam.Resolution != [2]int{960, 540} {
		t.Errorf("resolution = %v", cam.Resolution)
	}
	assertNear(t, "focal length", cam.FocalLength, 35)
	// 16:9 within film-gate precision.
	if cam.AspectRatio < 1.77 || cam.AspectRatio > 1.78 {
		t.Errorf("aspect ratio = %v", cam.AspectRatio)
	}
	assertNear(t, "aperture ratio", cam.FilmAperture[0]/cam.FilmAperture[1], 1.5)
}
