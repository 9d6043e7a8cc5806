package defs

import "github.com/RangeyRover/AMS2-CDF-File-Editor/internal/format"

// Builtin returns the starter definition table for AMS2 vehicle setup files.
// Markers were recovered by differential analysis of exported setups; fields
// named CDF_UNKN_* or Unkn_0x* locate reliably but their meaning is still
// unconfirmed.
func Builtin() *Table {
	t, err := NewTable(builtinDefs)
	if err != nil {
		// Only reachable through a typo in this table.
		panic(err)
	}
	return t
}

func d(section, name, marker string, layout format.Layout, notes string) *Def {
	return &Def{Name: name, Section: section, Marker: mustMarker(marker), Layout: layout, Notes: notes}
}

// Layout shorthands for the builtin table.
var (
	lNone = format.Layout{}
	lB    = format.Layout{format.Byte}
	lF    = format.Layout{format.Float}
	lBB   = format.Layout{format.Byte, format.Byte}
	lFF   = format.Layout{format.Float, format.Float}
	lFB   = format.Layout{format.Float, format.Byte}
	lBBB  = format.Layout{format.Byte, format.Byte, format.Byte}
	lBFB  = format.Layout{format.Byte, format.Float, format.Byte}
	lBFF  = format.Layout{format.Byte, format.Float, format.Float}
	lFBB  = format.Layout{format.Float, format.Byte, format.Byte}
	lFBF  = format.Layout{format.Float, format.Byte, format.Float}
	lFFB  = format.Layout{format.Float, format.Float, format.Byte}
	lFFF  = format.Layout{format.Float, format.Float, format.Float}
	lIIF  = format.Layout{format.Int32, format.Int32, format.Float}
)

var builtinDefs = []*Def{
	// GENERAL
	d("GENERAL", "GarageDisplayFlags", "20 9A 30 40 34", lB, "GarageDisplayFlags={byte}"),
	d("GENERAL", "FeelerFlags", "20 96 5B FF BF", lB, "FeelerFlags={byte}"),
	d("GENERAL", "Mass", "22 67 0B 57 AB", lF, "Mass={float}"),
	d("GENERAL", "Inertia", "24 BB B3 9F 0B A3 02", lFFF, "Inertia=(f,f,f)"),
	d("GENERAL", "FuelTankPos", "24 A0 53 0C 50 83 02", lBFF, "FuelTankPos=(byte,f,f)"),
	d("GENERAL", "FuelTankMotion", "24 6F 70 F3 C7 A2", lFF, "FuelTankMotion=(f,f)"),
	d("GENERAL", "CDF_UNKN_001", "26 3A 17 96 C2", lB, "CDF_UNKN_001={byte}"),
	d("GENERAL", "Symmetric", "20 38 05 5C 3C", lB, "Symmetric={byte}"),
	d("GENERAL", "CGHeight", "22 18 24 EA A8", lF, "CGHeight={float}"),
	d("GENERAL", "CGRightRange", "24 DF 8D 93 CF 23 00", lFBB, "CGRightRange=(f,b,b)"),
	d("GENERAL", "CGRightSetting", "28 00 9D 8A CF", lNone, "CGRightSetting=default"),
	d("GENERAL", "CGRearRange", "24 BE BA 67 7B 23 00", lFBB, "CGRearRange=(f,b,b)"),
	d("GENERAL", "CGRearSetting", "28 D4 4C 53 C4", lNone, "CGRearSetting=default"),
	d("GENERAL", "Unkn_0x221E5C8F56", "22 1E 5C 8F 56", lF, "Unkn_0x221E5C8F56={float}"),
	d("GENERAL", "GraphicalOffset", "24 86 9A 77 97 03 00", lBBB, "GraphicalOffset=(b,b,b)"),
	d("GENERAL", "CollisionOffset", "24 D2 CF F4 3D 03 00", lBBB, "CollisionOffset=(b,b,b)"),
	d("GENERAL", "UndertrayZeroZero", "24 E9 DE D9 99 23 02", lFBF, "UndertrayZeroZero=(f,b,f)"),
	d("GENERAL", "UndertrayZeroOne", "24 BA 61 42 62 23 02", lFBF, "UndertrayZeroOne=(f,b,f)"),
	d("GENERAL", "UndertrayZeroTwo", "24 AC 8D E9 39 23 02", lFBF, "UndertrayZeroTwo=(f,b,f)"),
	d("GENERAL", "UndertrayZeroThree", "24 C7 C2 3D 06 23 02", lFBF, "UndertrayZeroThree=(f,b,f)"),
	d("GENERAL", "UndertrayParams", "24 86 AE 66 2B 53 02", lIIF, "UndertrayParams=(i,i,f)"),
	d("GENERAL", "DryTireCompoundSetting", "26 E4 A7 89 37", lB, "DryTireCompoundSetting={byte}"),
	d("GENERAL", "WetTireCompoundSetting", "26 7B 83 4D 10", lB, "WetTireCompoundSetting={byte}"),
	d("GENERAL", "IceTireCompoundSetting", "26 A4 F8 37 C0", lB, "IceTireCompoundSetting={byte}"),
	d("GENERAL", "AllTerrainTireCompoundSetting", "26 F7 FA A8 5D", lB, "AllTerrainTireCompoundSetting={byte}"),
	d("GENERAL", "FuelRange", "24 19 38 99 74 A3 00", lFFB, "FuelRange=(f,f,b)"),
	d("GENERAL", "FuelSetting", "20 99 F0 BB F8", lB, "FuelSetting={byte}"),
	d("GENERAL", "NumPitstopsRange", "24 F7 05 73 EA 03 00", lBBB, "NumPitstopsRange=(b,b,b)"),
	d("GENERAL", "NumPitstopsSetting", "20 6D DE 02 E8", lB, "NumPitstopsSetting={byte}"),
	d("GENERAL", "PitstopOneRange", "24 9B FA 80 6D 83 00", lBFB, "PitstopOneRange=(b,f,b)"),
	d("GENERAL", "PitstopOneSetting", "20 03 EE A8 65", lB, "PitstopOneSetting={byte}"),
	d("GENERAL", "PitstopTwoRange", "24 55 DE D0 64 83 00", lBFB, "PitstopTwoRange=(b,f,b)"),
	d("GENERAL", "PitstopTwoSetting", "20 85 22 52 46", lB, "PitstopTwoSetting={byte}"),
	d("GENERAL", "PitstopThreeRange", "24 E8 12 23 11 83 00", lBFB, "PitstopThreeRange=(b,f,b)"),
	d("GENERAL", "PitstopThreeSetting", "20 26 BA 51 7D", lB, "PitstopThreeSetting={byte}"),
	d("GENERAL", "AIMinPassesPerTick", "20 BB 1F 05 F3", lB, "AIMinPassesPerTick={byte}"),
	d("GENERAL", "AIRotationThreshold", "22 26 A9 8C 99", lF, "AIRotationThreshold={float}"),
	d("GENERAL", "AIEvenSuspension", "22 79 F4 A6 98", lF, "AIEvenSuspension={float}"),
	d("GENERAL", "AISpringRate", "22 BC C7 CE E7", lF, "AISpringRate={float}"),
	d("GENERAL", "AIDamperSlow", "22 2B 3F F8 6B", lF, "AIDamperSlow={float}"),
	d("GENERAL", "AIDamperFast", "22 C4 89 77 69", lF, "AIDamperFast={float}"),
	d("GENERAL", "AIDownforceZArm", "22 88 76 9A ED", lF, "AIDownforceZArm={float}"),
	d("GENERAL", "AIDownforceBias", "22 15 6B 48 37", lF, "AIDownforceBias={float}"),
	d("GENERAL", "AITorqueStab", "24 2E 5D 54 E4 A3 02", lFFF, "AITorqueStab=(f,f,f)"),

	// FRONT WING
	d("FRONT WING", "FWRange", "24 AD 3C 20 13 83 00", lBFB, "FWRange=(b,f,b)"),
	d("FRONT WING", "FWSetting", "20 06 A3 1F 94", lB, "FWSetting={byte}"),
	d("FRONT WING", "FWMaxHeight", "24 09 A8 52 D9 21", lF, "FWMaxHeight={float}"),
	d("FRONT WING", "FWDragParams", "24 2C FB 70 DA A3 02", lFFF, "FWDragParams=(f,f,f)"),
	d("FRONT WING", "FWLiftParams", "24 23 EC 21 2A A3 02", lFFF, "FWLiftParams=(f,f,f)"),
	d("FRONT WING", "FWLiftHeight", "24 06 F4 58 AC 21", lF, "FWLiftHeight={float}"),
	d("FRONT WING", "FWLiftSideways", "24 96 D3 8A 17 21", lF, "FWLiftSideways={float}"),
	d("FRONT WING", "FWLeft", "24 54 6C CD BF A3 02", lFFF, "FWLeft=(f,f,f)"),
	d("FRONT WING", "FWRight", "24 C5 19 77 0C A3 02", lFFF, "FWRight=(f,f,f)"),
	d("FRONT WING", "FWUp", "24 CD 98 5A 4C A3 02", lFFF, "FWUp=(f,f,f)"),
	d("FRONT WING", "FWDown", "24 82 6E D8 E3 A3 02", lFFF, "FWDown=(f,f,f)"),
	d("FRONT WING", "FWAft", "24 E4 3E 99 D8 A3 02", lFFF, "FWAft=(f,f,f)"),
	d("FRONT WING", "FWFore", "24 F5 42 E8 78 A3 02", lFFF, "FWFore=(f,f,f)"),
	d("FRONT WING", "FWRot", "24 3D FD AB 72 A3 02", lFFF, "FWRot=(f,f,f)"),
	d("FRONT WING", "FWCenter", "24 EB DD A8 12 A3 02", lFFF, "FWCenter=(f,f,f)"),

	// FRONT RIGHT WING
	d("FRONT RIGHT WING", "FRWRange", "24 96 A7 D0 8D 83 00", lBFB, "FRWRange=(b,f,b)"),
	d("FRONT RIGHT WING", "FRWSetting", "20 B5 E8 1B 09", lB, "FRWSetting={byte}"),
	d("FRONT RIGHT WING", "FRWMaxHeight", "24 29 1A 69 42 21", lF, "FRWMaxHeight={float}"),
	d("FRONT RIGHT WING", "FRWDragParams", "24 CF 8B E1 A1 A3 02", lFFF, "FRWDragParams=(f,f,f)"),
	d("FRONT RIGHT WING", "FRWLiftParams", "24 76 29 1C 37 A3 02", lFFF, "FRWLiftParams=(f,f,f)"),
	d("FRONT RIGHT WING", "FRWLiftHeight", "24 4B 1A 06 AD 21", lF, "FRWLiftHeight={float}"),
	d("FRONT RIGHT WING", "FRWLiftSideways", "24 81 05 80 FE 21", lF, "FRWLiftSideways={float}"),
	d("FRONT RIGHT WING", "FRWLeft", "24 A3 72 BD EE A3 02", lFFF, "FRWLeft=(f,f,f)"),
	d("FRONT RIGHT WING", "FRWRight", "24 E3 C5 15 C2 A3 02", lFFF, "FRWRight=(f,f,f)"),
	d("FRONT RIGHT WING", "FRWUp", "24 68 D5 13 6E A3 02", lFFF, "FRWUp=(f,f,f)"),
	d("FRONT RIGHT WING", "FRWDown", "24 41 68 8B 03 A3 02", lFFF, "FRWDown=(f,f,f)"),
	d("FRONT RIGHT WING", "FRWAft", "24 57 1E 68 BD A3 02", lFFF, "FRWAft=(f,f,f)"),
	d("FRONT RIGHT WING", "FRWFore", "24 91 B8 03 C5 A3 02", lFFF, "FRWFore=(f,f,f)"),
	d("FRONT RIGHT WING", "FRWRot", "24 7B 00 64 6A A3 02", lFFF, "FRWRot=(f,f,f)"),
	d("FRONT RIGHT WING", "FRWCenter", "24 87 7F E1 43 A3 02", lFFF, "FRWCenter=(f,f,f)"),

	// REAR WING
	d("REAR WING", "RWRange", "24 15 76 54 86 83 00", lBFB, "RWRange=(b,f,b)"),
	d("REAR WING", "RWSetting", "20 8A 98 EB 35", lB, "RWSetting={byte}"),
	d("REAR WING", "RWDragParams", "24 67 DC B6 B3 A3 02", lFFF, "RWDragParams=(f,f,f)"),
	d("REAR WING", "RWLiftParams", "24 83 D3 85 B9 A3 02", lFFF, "RWLiftParams=(f,f,f)"),
	d("REAR WING", "RWLiftSideways", "24 7A 8F 77 C8 21", lF, "RWLiftSideways={float}"),
	d("REAR WING", "RWPeakYaw", "24 15 2E 20 37 A2", lFF, "RWPeakYaw=(f,f)"),
	d("REAR WING", "RWLeft", "24 34 3E C4 2F A3 02", lFFF, "RWLeft=(f,f,f)"),
	d("REAR WING", "RWRight", "24 42 3B C2 6A A3 02", lFFF, "RWRight=(f,f,f)"),
	d("REAR WING", "RWUp", "24 EF B4 24 0A A3 02", lFFF, "RWUp=(f,f,f)"),
	d("REAR WING", "RWDown", "24 65 F8 14 22 A3 02", lFFF, "RWDown=(f,f,f)"),
	d("REAR WING", "RWAft", "24 69 EC ED 3E A3 02", lFFF, "RWAft=(f,f,f)"),
	d("REAR WING", "RWFore", "24 D5 07 F8 FE A3 02", lFFF, "RWFore=(f,f,f)"),
	d("REAR WING", "RWRot", "24 08 4B 50 B3 A3 02", lFFF, "RWRot=(f,f,f)"),
	d("REAR WING", "RWCenter", "24 17 44 ED 31 A3 02", lFFF, "RWCenter=(f,f,f)"),

	// REAR RIGHT WING
	d("REAR RIGHT WING", "RRWRange", "24 1F 3D 69 0C 03 00", lBBB, "RRWRange=(b,b,b)"),
	d("REAR RIGHT WING", "RRWSetting", "28 85 98 3C 01", lNone, "RRWSetting=default"),
	d("REAR RIGHT WING", "RRWDragParams", "24 6B 20 03 55 23 00", lFBB, "RRWDragParams=(f,b,b)"),
	d("REAR RIGHT WING", "RRWLiftParams", "24 B8 2D 4D C4 03 00", lBBB, "RRWLiftParams=(b,b,b)"),
	d("REAR RIGHT WING", "RRWLiftSideways", "24 0A 2B 9B 22 01", lB, "RRWLiftSideways={byte}"),
	d("REAR RIGHT WING", "RRWPeakYaw", "24 BD CD 13 89 02", lBB, "RRWPeakYaw=(b,b)"),
	d("REAR RIGHT WING", "RRWLeft", "24 22 45 69 35 03 00", lBBB, "RRWLeft=(b,b,b)"),
	d("REAR RIGHT WING", "RRWRight", "24 51 1B 19 80 03 00", lBBB, "RRWRight=(b,b,b)"),
	d("REAR RIGHT WING", "RRWUp", "24 86 1A F2 5C 03 00", lBBB, "RRWUp=(b,b,b)"),
	d("REAR RIGHT WING", "RRWDown", "24 51 EE 77 72 03 00", lBBB, "RRWDown=(b,b,b)"),
	d("REAR RIGHT WING", "RRWAft", "24 46 77 39 74 03 00", lBBB, "RRWAft=(b,b,b)"),
	d("REAR RIGHT WING", "RRWFore", "24 2B 7E E4 47 03 00", lBBB, "RRWFore=(b,b,b)"),
	d("REAR RIGHT WING", "RRWRot", "24 99 E7 CC 64 03 00", lBBB, "RRWRot=(b,b,b)"),
	d("REAR RIGHT WING", "RRWCenter", "24 8D 6C 15 A3 83 02", lBFF, "RRWCenter=(b,f,f)"),

	// BODY AERO
	d("BODY AERO", "BodyDragBase", "24 33 63 ED FD 21", lF, "BodyDragBase={float}"),
	d("BODY AERO", "BodyDragHeightAvg", "24 67 CA A0 92 21", lF, "BodyDragHeightAvg={float}"),
	d("BODY AERO", "BodyDragHeightDiff", "24 1F 13 C1 85 21", lF, "BodyDragHeightDiff={float}"),
	d("BODY AERO", "BodyMaxHeight", "24 56 E0 A3 AB 21", lF, "BodyMaxHeight={float}"),
	d("BODY AERO", "BodyLeft", "24 C5 A5 4E CE A3 02", lFFF, "BodyLeft=(f,f,f)"),
	d("BODY AERO", "BodyRight", "24 6A 08 2A D4 A3 02", lFFF, "BodyRight=(f,f,f)"),
	d("BODY AERO", "BodyUp", "24 DC 57 D2 48 A3 02", lFFF, "BodyUp=(f,f,f)"),
	d("BODY AERO", "BodyDown", "24 E3 A1 65 97 A3 02", lFFF, "BodyDown=(f,f,f)"),
	d("BODY AERO", "BodyAft", "24 08 B1 B6 50 A3 02", lFFF, "BodyAft=(f,f,f)"),
	d("BODY AERO", "BodyFore", "24 DC 2F 52 E4 A3 02", lFFF, "BodyFore=(f,f,f)"),
	d("BODY AERO", "BodyRot", "24 F8 26 31 A8 A3 02", lFFF, "BodyRot=(f,f,f)"),
	d("BODY AERO", "BodyCenter", "24 38 D1 8E E7 A3 02", lFFF, "BodyCenter=(f,f,f)"),
	d("BODY AERO", "RadiatorRange", "24 8E 02 D1 67 83 00", lBFB, "RadiatorRange=(b,f,b)"),
	d("BODY AERO", "RadiatorSetting", "20 F7 CF 3C A8", lB, "RadiatorSetting={byte}"),
	d("BODY AERO", "RadiatorDrag", "24 CD 9B D5 4E 21", lF, "RadiatorDrag={float}"),
	d("BODY AERO", "RadiatorLift", "24 0A 98 AA BD 21", lF, "RadiatorLift={float}"),
	d("BODY AERO", "BrakeDuctRange", "24 67 64 39 31 83 00", lBFB, "BrakeDuctRange=(b,f,b)"),
	d("BODY AERO", "BrakeDuctSetting", "20 CF 01 35 71", lB, "BrakeDuctSetting={byte}"),
	d("BODY AERO", "BrakeDuctDrag", "24 50 2D C5 AE 21", lF, "BrakeDuctDrag={float}"),
	d("BODY AERO", "BrakeDuctLift", "24 B7 28 36 3E 21", lF, "BrakeDuctLift={float}"),

	// DIFFUSER
	d("DIFFUSER", "DiffuserBase", "24 BE 0F 28 99 A3 02", lFFF, "DiffuserBase=(f,f,f)"),
	d("DIFFUSER", "DiffuserFrontHeight", "24 47 D0 B1 DE 21", lF, "DiffuserFrontHeight={float}"),
	d("DIFFUSER", "DiffuserRake", "24 20 B9 8D FF A3 02", lFFF, "DiffuserRake=(f,f,f)"),
	d("DIFFUSER", "DiffuserLimits", "24 FF 59 46 C8 A3 02", lFFF, "DiffuserLimits=(f,f,f)"),
	d("DIFFUSER", "DiffuserStall", "24 E0 A1 25 DE A2", lFF, "DiffuserStall=(f,f)"),
	d("DIFFUSER", "DiffuserSideways", "24 E1 76 32 24 21", lF, "DiffuserSideways={float}"),
	d("DIFFUSER", "DiffuserCenter", "24 B8 97 56 8E A3 02", lFFF, "DiffuserCenter=(f,f,f)"),

	// SUSPENSION
	d("SUSPENSION", "AdjustSuspRates", "20 7D E0 90 64", lB, "AdjustSuspRates={byte}"),
	d("SUSPENSION", "AlignWheels", "20 B2 B4 93 40", lB, "AlignWheels={byte}"),
	d("SUSPENSION", "SpringBasedAntiSway", "20 26 E9 82 B6", lB, "SpringBasedAntiSway={byte}"),
	d("SUSPENSION", "FrontAntiSwayBase", "28 89 92 C5 F3", lNone, "FrontAntiSwayBase=default"),
	d("SUSPENSION", "FrontAntiSwayRange", "24 E5 B9 A9 D6 A3 00", lFFB, "FrontAntiSwayRange=(f,f,b)"),
	d("SUSPENSION", "FrontAntiSwaySetting", "20 7F C7 58 D5", lB, "FrontAntiSwaySetting={byte}"),
	d("SUSPENSION", "FrontAntiSwayRate", "24 2E 06 8D A5 A2", lFF, "FrontAntiSwayRate=(f,f)"),
	d("SUSPENSION", "RearAntiSwayRange", "24 66 00 1E 25 A3 00", lFFB, "RearAntiSwayRange=(f,f,b)"),
	d("SUSPENSION", "RearAntiSwaySetting", "20 04 78 E9 91", lB, "RearAntiSwaySetting={byte}"),
	d("SUSPENSION", "RearAntiSwayRate", "24 50 E0 77 73 A2", lFF, "RearAntiSwayRate=(f,f)"),
	d("SUSPENSION", "FrontToeInRange", "24 69 D4 9B 3B A3 00", lFFB, "FrontToeInRange=(f,f,b)"),
	d("SUSPENSION", "FrontToeInSetting", "20 C3 36 57 CC", lB, "FrontToeInSetting={byte}"),
	d("SUSPENSION", "RearToeInRange", "24 55 C9 EA 65 A3 00", lFFB, "RearToeInRange=(f,f,b)"),
	d("SUSPENSION", "RearToeInSetting", "20 FD F7 43 4F", lB, "RearToeInSetting={byte}"),
	d("SUSPENSION", "LeftCasterRange", "24 1A 73 FE 3E A3 00", lFFB, "LeftCasterRange=(f,f,b)"),
	d("SUSPENSION", "LeftCasterSetting", "20 FF D7 A7 D9", lB, "LeftCasterSetting={byte}"),
	d("SUSPENSION", "RightCasterRange", "24 33 76 33 73 A3 00", lFFB, "RightCasterRange=(f,f,b)"),
	d("SUSPENSION", "RightCasterSetting", "20 A6 B8 E3 8F", lB, "RightCasterSetting={byte}"),

	// CONTROLS
	d("CONTROLS", "SteeringFFBMult", "22 24 F5 34 B3", lF, "SteeringFFBMult={float}"),
	d("CONTROLS", "FFBGripMulti", "22 FB 38 19 1C", lF, "FFBGripMulti={float}"),
	d("CONTROLS", "SteeringRatioRange", "24 6B 4E A0 77 A3 00", lFFB, "SteeringRatioRange=(f,f,b)"),
	d("CONTROLS", "SteeringRatioSetting", "20 0F 6A B7 B6", lB, "SteeringRatioSetting={byte}"),
	d("CONTROLS", "CDF_UNKN_006", "22 27 A0 D3 AC", lF, "CDF_UNKN_006={float}"),
	d("CONTROLS", "CDF_UNKN_007", "20 31 7B 74 DC", lB, "CDF_UNKN_007={byte}"),
	d("CONTROLS", "CDF_UNKN_008", "22 E8 09 B9 01", lF, "CDF_UNKN_008={float}"),
	d("CONTROLS", "CDF_UNKN_011", "22 20 D5 05 AC", lF, "CDF_UNKN_011={float}"),
	d("CONTROLS", "CDF_UNKN_012", "22 48 E1 7A 3F", lF, "CDF_UNKN_012={float}"),
	d("CONTROLS", "UpshiftAlgorithm", "24 E0 D9 C8 5B 22", lFB, "UpshiftAlgorithm=(f,b)"),
	d("CONTROLS", "DownshiftAlgorithm", "24 A6 8D 9C E2 A3 02", lFFF, "DownshiftAlgorithm=(f,f,f)"),
	d("CONTROLS", "SteeringLockRange", "24 30 43 CE 21 23 00", lFBB, "SteeringLockRange=(f,b,b)"),
	d("CONTROLS", "SteeringLockSetting", "28 B7 C2 C5 7E", lNone, "SteeringLockSetting=default"),
	d("CONTROLS", "Unkn_0x2205CF7B77", "22 05 CF 7B 77", lF, "Unkn_0x2205CF7B77={float}"),
	d("CONTROLS", "Unkn_0x2252FA3411", "22 52 FA 34 11", lF, "Unkn_0x2252FA3411={float}"),
	d("CONTROLS", "RearBrakeRange", "24 A6 32 13 57 83 00", lBFB, "RearBrakeRange=(b,f,b)"),
	d("CONTROLS", "RearBrakeSetting", "20 FD BA 64 73", lB, "RearBrakeSetting={byte}"),
	d("CONTROLS", "BrakePressureRange", "24 D0 00 38 59 A3 00", lFFB, "BrakePressureRange=(f,f,b)"),
	d("CONTROLS", "BrakePressureSetting", "20 DA BD B9 81", lB, "BrakePressureSetting={byte}"),
	d("CONTROLS", "HandbrakeRange", "24 96 4B 29 B4 83 00", lBFB, "HandbrakeRange=(b,f,b)"),
	d("CONTROLS", "HandbrakePressSetting", "20 52 30 1F D2", lB, "HandbrakePressSetting={byte}"),
	d("CONTROLS", "AutoUpshiftGripThresh", "22 E3 5A 1D CA", lF, "AutoUpshiftGripThresh={float}"),
	d("CONTROLS", "AutoDownshiftGripThresh", "22 33 DE 0B C9", lF, "AutoDownshiftGripThresh={float}"),
	d("CONTROLS", "TractionControlGrip", "24 07 F7 6E 47 A2", lFF, "TractionControlGrip=(f,f)"),
	d("CONTROLS", "TractionControlLevel", "24 25 5A FB 23 A2", lFF, "TractionControlLevel=(f,f)"),
	d("CONTROLS", "ABSStrengthRange", "24 24 9E 03 13 83 00", lBFB, "ABSStrengthRange=(b,f,b)"),
	d("CONTROLS", "ABSStrengthSetting", "20 B2 BE 8E 7E", lB, "ABSStrengthSetting={byte}"),
	d("CONTROLS", "CDF_UNKN_016", "20 FA CE 76 12", lB, "CDF_UNKN_016={byte}"),
	d("CONTROLS", "CDF_UNKN_017", "20 D5 DD 9C 9B", lB, "CDF_UNKN_017={byte}"),
	d("CONTROLS", "CDF_UNKN_018", "20 5B D1 F7 C8", lB, "CDF_UNKN_018={byte}"),
	d("CONTROLS", "CDF_UNKN_019", "24 64 70 F5 FD 83 02", lBFF, "CDF_UNKN_019=(b,f,f)"),
	d("CONTROLS", "CDF_UNKN_020", "20 34 76 EE E3", lB, "CDF_UNKN_020={byte}"),
	d("CONTROLS", "CDF_UNKN_021", "24 C8 1B AC AF 83 02", lBFF, "CDF_UNKN_021=(b,f,f)"),
	d("CONTROLS", "CDF_UNKN_022", "20 61 5A 10 D6", lB, "CDF_UNKN_022={byte}"),
	d("CONTROLS", "CDF_UNKN_023", "24 D2 2F 18 AF 83 02", lBFF, "CDF_UNKN_023=(b,f,f)"),
	d("CONTROLS", "CDF_UNKN_024", "20 4D CA 34 17", lB, "CDF_UNKN_024={byte}"),
	d("CONTROLS", "CDF_UNKN_025", "24 B3 85 4E E0 83 02", lBFF, "CDF_UNKN_025=(b,f,f)"),
	d("CONTROLS", "CDF_UNKN_026", "20 6C E5 6E 1B", lB, "CDF_UNKN_026={byte}"),
	d("CONTROLS", "CDF_UNKN_027", "24 72 DE E1 17 83 02", lBFF, "CDF_UNKN_027=(b,f,f)"),
	d("CONTROLS", "CDF_UNKN_028", "20 99 3F 2A 3F", lB, "CDF_UNKN_028={byte}"),
	d("CONTROLS", "CDF_UNKN_029", "24 5A AE 27 42 83 02", lBFF, "CDF_UNKN_029=(b,f,f)"),
	d("CONTROLS", "CDF_UNKN_030", "20 25 F7 FA 9E", lB, "CDF_UNKN_030={byte}"),
	d("CONTROLS", "CDF_UNKN_031", "24 7A 49 7E 24 83 02", lBFF, "CDF_UNKN_031=(b,f,f)"),
	d("CONTROLS", "CDF_UNKN_031_Setting", "28 99 85 60 E9", lNone, "CDF_UNKN_031_Setting=default"),
	d("CONTROLS", "CDF_UNKN_032", "24 25 8E 3F 20 83 02", lBFF, "CDF_UNKN_032=(b,f,f)"),
	d("CONTROLS", "CDF_UNKN_032_Setting", "28 3C 50 F8 D7", lNone, "CDF_UNKN_032_Setting=default"),
	d("CONTROLS", "CDF_UNKN_033", "24 6A 7D 42 63 83 02", lBFF, "CDF_UNKN_033=(b,f,f)"),
	d("CONTROLS", "CDF_UNKN_033_Setting", "28 A9 F7 13 BD", lNone, "CDF_UNKN_033_Setting=default"),
	d("CONTROLS", "CDF_UNKN_034", "24 98 CA 4E 61 03 02", lBBB, "CDF_UNKN_034=(b,b,b)"),
	d("CONTROLS", "CDF_UNKN_034_Setting", "20 77 E8 4F 5C", lB, "CDF_UNKN_034_Setting={byte}"),
	d("CONTROLS", "CDF_UNKN_035", "24 09 DE B7 68 83 02", lBFF, "CDF_UNKN_035=(b,f,f)"),
	d("CONTROLS", "CDF_UNKN_035_Setting", "28 FF 26 A3 2B", lNone, "CDF_UNKN_035_Setting=default"),
	d("CONTROLS", "CDF_UNKN_036", "24 4B D5 82 72 83 02", lBFF, "CDF_UNKN_036=(b,f,f)"),
	d("CONTROLS", "CDF_UNKN_036_Setting", "28 E5 12 C1 5D", lNone, "CDF_UNKN_036_Setting=default"),
	d("CONTROLS", "CDF_UNKN_037", "24 22 AC 0C 3A 83 02", lBFF, "CDF_UNKN_037=(b,f,f)"),
	d("CONTROLS", "CDF_UNKN_037_Setting", "20 17 7A 98 F5", lB, "CDF_UNKN_037_Setting={byte}"),
	d("CONTROLS", "CDF_UNKN_039", "24 9F C7 1E D1 83 02", lBFF, "CDF_UNKN_039=(b,f,f)"),
	d("CONTROLS", "CDF_UNKN_040", "20 C7 D5 99 C6", lB, "CDF_UNKN_040={byte}"),
	d("CONTROLS", "CDF_UNKN_041", "24 67 8C A5 99 83 02", lBFF, "CDF_UNKN_041=(b,f,f)"),
	d("CONTROLS", "CDF_UNKN_041_Setting", "28 BE A1 5C E1", lNone, "CDF_UNKN_041_Setting=default"),
	d("CONTROLS", "CDF_UNKN_042", "24 8E 47 3C 20 83 02", lBFF, "CDF_UNKN_042=(b,f,f)"),
	d("CONTROLS", "CDF_UNKN_042_Setting", "28 ED 5F B5 79", lNone, "CDF_UNKN_042_Setting=default"),
	d("CONTROLS", "CDF_UNKN_043", "24 23 F0 43 98 83 02", lBFF, "CDF_UNKN_043=(b,f,f)"),
	d("CONTROLS", "CDF_UNKN_043_Setting", "28 CA E1 FE 39", lNone, "CDF_UNKN_043_Setting=default"),
	d("CONTROLS", "CDF_UNKN_044", "24 E7 6C F5 65 83 02", lBFF, "CDF_UNKN_044=(b,f,f)"),
	d("CONTROLS", "CDF_UNKN_044_Setting", "28 31 6F DC CC", lNone, "CDF_UNKN_044_Setting=default"),

	// DRIVELINE
	d("DRIVELINE", "ClutchEngageRate", "22 1B CA 33 55", lF, "ClutchEngageRate={float}"),
	d("DRIVELINE", "ClutchInertia", "22 D3 1C F6 C6", lF, "ClutchInertia={float}"),
	d("DRIVELINE", "ClutchTorque", "22 2E 33 DB 70", lF, "ClutchTorque={float}"),
	d("DRIVELINE", "ClutchFriction", "22 9B 56 A1 18", lF, "ClutchFriction={float}"),
	d("DRIVELINE", "BaulkTorque", "22 36 6E 87 07", lF, "BaulkTorque={float}"),
	d("DRIVELINE", "SemiAutomatic", "20 1D EA 4C 3D", lB, "SemiAutomatic={byte}"),
	d("DRIVELINE", "CDF_UNKN_046", "20 74 73 B2 00", lB, "CDF_UNKN_046={byte}"),
	d("DRIVELINE", "CDF_UNKN_047", "20 B5 19 EF 5C", lB, "CDF_UNKN_047={byte}"),
	d("DRIVELINE", "UpshiftDelay", "22 67 F7 AD 20", lF, "UpshiftDelay={float}"),
	d("DRIVELINE", "UpshiftClutchTime", "22 9D 78 9E C9", lF, "UpshiftClutchTime={float}"),
	d("DRIVELINE", "DownshiftDelay", "22 07 50 AF 26", lF, "DownshiftDelay={float}"),
	d("DRIVELINE", "DownshiftClutchTime", "22 DB 0B FC 09", lF, "DownshiftClutchTime={float}"),
	d("DRIVELINE", "DownshiftBlipThrottle", "22 3B 62 D3 1C", lF, "DownshiftBlipThrottle={float}"),
	d("DRIVELINE", "FinalDriveSetting", "20 C1 EB DC 28", lB, "FinalDriveSetting={byte}"),
	d("DRIVELINE", "ReverseGearSetting", "28 D6 71 85 B0", lNone, "ReverseGearSetting=default"),
	d("DRIVELINE", "ForwardGears", "20 FF 0C 22 07", lB, "ForwardGears={byte}"),
	d("DRIVELINE", "GearOneSetting", "28 F4 CC 2F 1D", lNone, "GearOneSetting=default"),
	d("DRIVELINE", "GearTwoSetting", "20 8D 69 C2 DA", lB, "GearTwoSetting={byte}"),
	d("DRIVELINE", "GearThreeSetting", "20 C0 25 93 C3", lB, "GearThreeSetting={byte}"),
	d("DRIVELINE", "GearFourSetting", "20 78 92 B7 5A", lB, "GearFourSetting={byte}"),
	d("DRIVELINE", "GearFiveSetting", "20 78 4E 48 36", lB, "GearFiveSetting={byte}"),
	d("DRIVELINE", "GearSixSetting", "20 5F 2B A9 EE", lB, "GearSixSetting={byte}"),
}
