package blend

// blendCopy replaces destination with source.
func blendCopy(sr, sg, sb, sa, _, _, _, _ byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}

// blendSourceOver composites source over destination.
// Formula: S + D * (1 - Sa)
func blendSourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(sr, mulDiv255(dr, invSa)),
		addClamp(sg, mulDiv255(dg, invSa)),
		addClamp(sb, mulDiv255(db, invSa)),
		addClamp(sa, mulDiv255(da, invSa))
}

// blendScreen composites the screen blend with source-over.
//
// The general separable formula (1-Sa)*D + (1-Da)*S + Sa*Da*B(Sc, Dc)
// collapses for screen to S + D - S*D on premultiplied channels, alpha
// included, so no unpremultiply round trip is needed.
func blendScreen(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return screenChan(sr, dr), screenChan(sg, dg), screenChan(sb, db), screenChan(sa, da)
}

// screenChan returns s + d - s*d for one premultiplied channel.
func screenChan(s, d byte) byte {
	return 255 - mulDiv255(255-s, 255-d)
}
