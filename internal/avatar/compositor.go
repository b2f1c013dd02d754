package avatar

import (
	"github.com/KirkDiggler/chore-quest/internal/entities"
	"github.com/KirkDiggler/chore-quest/internal/render/svg"
)

// Layer names in z-order, back to front. The order decides what occludes what
// and is part of the rendering contract.
const (
	LayerBackground      = "background"
	LayerBehindAccessory = "behind_accessory"
	LayerNeck            = "neck"
	LayerBody            = "body"
	LayerHead            = "head"
	LayerFaceExtra       = "face_extra"
	LayerEyes            = "eyes"
	LayerEyelids         = "eyelids"
	LayerMouth           = "mouth"
	LayerHair            = "hair"
	LayerHat             = "hat"
	LayerFrontAccessory  = "front_accessory"
	LayerCompanion       = "companion"
	LayerCompanionExtras = "companion_extras"
)

// LayerOrder lists every layer a render may produce, back to front.
func LayerOrder() []string {
	return []string{
		LayerBackground, LayerBehindAccessory, LayerNeck, LayerBody, LayerHead,
		LayerFaceExtra, LayerEyes, LayerEyelids, LayerMouth, LayerHair, LayerHat,
		LayerFrontAccessory, LayerCompanion, LayerCompanionExtras,
	}
}

// RenderInput is everything a render depends on.
type RenderInput struct {
	Config entities.AvatarConfig
	// Preview optionally overrides one field for a try-on render. It is applied
	// to a copy and never touches Config.
	Preview *entities.Preview
	// Interactive adds the anchor marker UI sparkle effects attach to.
	Interactive bool
}

// Render composes the character and its companion into a layered document.
// Layers with nothing to draw are omitted.
func Render(in RenderInput) *svg.Document {
	cfg := entities.ApplyPreview(in.Config, in.Preview).WithDefaults()
	pal := resolveColors(cfg)
	headLayout := HeadLayoutFor(cfg.Head)
	bodyLayout := BodyLayoutFor(cfg.Body)
	face := headLayout.Face()

	doc := &svg.Document{}

	doc.Add(LayerBackground, svg.Rect(0, 0, svg.ViewBoxSize, svg.ViewBoxSize, 0).Fill(pal.Background))

	acc := accessories.lookup(cfg.Accessory)
	accInk := ink{Main: pal.Accessory}
	if acc.placement == PlacementBehind {
		doc.Add(LayerBehindAccessory, transformed(acc.draw(accInk), bodyLayout.Behind())...)
	}

	doc.Add(LayerNeck, neck(pal.Skin)...)

	shape := bodyShapes.lookup(cfg.Body)
	torso := shape.elements(pal.Outfit)
	torso = append(torso, outfitPatterns.lookup(cfg.OutfitPattern)(shape.left, shape.width)...)
	doc.Add(LayerBody, torso...)

	doc.Add(LayerHead, heads.lookup(cfg.Head)(ink{Main: pal.Skin})...)
	doc.Add(LayerFaceExtra, transformed(faceExtras.lookup(cfg.FaceExtra)(ink{}), face)...)
	doc.Add(LayerEyes, transformed(eyeStyles.lookup(cfg.Eyes)(ink{Main: pal.Eyes}), face)...)
	doc.Add(LayerEyelids, transformed(eyelids(cfg.Eyes, pal.Eyelid), face)...)
	doc.Add(LayerMouth, transformed(mouthStyles.lookup(cfg.Mouth)(ink{Main: pal.Mouth, Detail: pal.Tongue}), face)...)
	doc.Add(LayerHair, transformed(hairStyles.lookup(cfg.Hair)(ink{Main: pal.Hair}), headLayout.Hair())...)
	doc.Add(LayerHat, transformed(hats.lookup(cfg.Hat)(ink{Main: pal.Hat}), headLayout.Hat())...)

	if acc.placement == PlacementFront || acc.placement == PlacementHeld {
		front := acc.draw(accInk)
		if in.Interactive {
			front = append(front, sparkleAnchor(acc))
		}
		m := svg.Identity
		if acc.placement == PlacementFront {
			m = bodyLayout.Front()
		}
		doc.Add(LayerFrontAccessory, transformed(front, m)...)
	}

	companion, extras := companionLayers(cfg, pal)
	doc.Add(LayerCompanion, companion...)
	doc.Add(LayerCompanionExtras, extras...)

	return doc
}

// transformed wraps elements in a single group carrying m.
func transformed(elements []svg.Element, m svg.Matrix) []svg.Element {
	if len(elements) == 0 {
		return nil
	}
	return []svg.Element{svg.Group(elements...).Transform(m)}
}
