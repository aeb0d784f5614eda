package asteroids

// resolveBulletHits removes every bullet that overlaps a rock together with
// the first such rock. Bullets and rocks are scanned in insertion order and
// a rock is taken by at most one bullet. It returns the survivors and the
// number of rocks destroyed.
func resolveBulletHits(bullets []*Bullet, rocks []*Rock) ([]*Bullet, []*Rock, int) {
	if len(bullets) == 0 || len(rocks) == 0 {
		return bullets, rocks, 0
	}

	deadRock := make([]bool, len(rocks))
	deadBullet := make([]bool, len(bullets))
	hits := 0

	for bi, b := range bullets {
		for ri, r := range rocks {
			if deadRock[ri] {
				continue
			}
			if b.Rect.Intersects(r.CollisionRect) {
				deadBullet[bi] = true
				deadRock[ri] = true
				hits++
				break
			}
		}
	}

	if hits == 0 {
		return bullets, rocks, 0
	}
	return sweep(bullets, deadBullet), sweep(rocks, deadRock), hits
}

// findShipHit returns the index of the first rock touching the ship, or -1.
func findShipHit(ship *Ship, rocks []*Rock) int {
	for i, r := range rocks {
		if ship.CollisionRect.Intersects(r.CollisionRect) {
			return i
		}
	}
	return -1
}

// removeEscaped drops rocks that left the playfield. It returns the survivors
// and how many of the removed rocks had been visible.
func removeEscaped(rocks []*Rock, screenW, screenH float64) ([]*Rock, int) {
	escaped := 0
	kept := rocks[:0]
	for _, r := range rocks {
		if r.OffScreen(screenW, screenH) {
			if r.Visible {
				escaped++
			}
			continue
		}
		kept = append(kept, r)
	}
	clear(rocks[len(kept):])
	return kept, escaped
}

// removeExpired drops bullets that left the playfield.
func removeExpired(bullets []*Bullet, screenW, screenH float64) []*Bullet {
	kept := bullets[:0]
	for _, b := range bullets {
		if !b.Expired(screenW, screenH) {
			kept = append(kept, b)
		}
	}
	clear(bullets[len(kept):])
	return kept
}

// sweep returns items whose dead flag is not set, preserving order.
func sweep[T any](items []T, dead []bool) []T {
	kept := items[:0]
	for i, it := range items {
		if !dead[i] {
			kept = append(kept, it)
		}
	}
	clear(items[len(kept):])
	return kept
}
