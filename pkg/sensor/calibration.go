package sensor

// Device-frame calibration for the 32-photodiode cluster, in meters. Rows are
// indexed by sensor number and hold (x, y, z) as exported from the CAD model.
var devicePositions = [ClusterSize][3]float64{
	{0.08518143743276596, 0.017062144353985786, 0.04640356823801994},
	{0.09299874305725098, -9.77110757958144e-05, 0.03490303456783295},
	{0.0866357758641243, 0.016550032421946526, 0.020586593076586723},
	{0.0896136462688446, 0.029156366363167763, 0.0296088345348835},
	{0.07996707409620285, 0.04522520303726196, 0.03478708118200302},
	{0.05082200840115547, 0.0525379441678524, 0.03328508138656616},
	{0.02431630529463291, 0.0200039092451334, 0.05943312123417854},
	{0.04736604541540146, 0.03358921408653259, 0.05357927456498146},
	{0.04778143763542175, -0.034000154584646225, 0.05348391830921173},
	{0.05795735865831375, -3.651010774774477e-05, 0.05651696398854256},
	{0.02757195383310318, -0.051707036793231964, 0.046649035066366196},
	{0.05145823583006859, -0.05293474718928337, 0.03312348574399948},
	{0.08054577559232712, -0.04522349312901497, 0.03467874228954315},
	{0.08995519578456879, -0.029309064149856567, 0.02968563325703144},
	{0.0868583470582962, -0.016645202413201332, 0.020546138286590576},
	{0.08528480678796768, -0.01717553101480007, 0.04645363613963127},
	{-0.04789695516228676, 0.03364776074886322, 0.05359702929854393},
	{-0.02451552450656891, 0.020054345950484276, 0.05939493328332901},
	{-0.05120636895298958, 0.05282235145568848, 0.033184923231601715},
	{-0.08026022464036942, 0.045291341841220856, 0.034813448786735535},
	{-0.08975434303283691, 0.02939225733280182, 0.029623806476593018},
	{-0.08676112443208694, 0.01667257957160473, 0.02072800137102604},
	{-0.09296955168247223, 0.00019559808424673975, 0.034909311681985855},
	{-0.08538919687271118, 0.01735016517341137, 0.046313270926475525},
	{-0.08526882529258728, -0.017100226134061813, 0.046251364052295685},
	{-0.08669501543045044, -0.016456371173262596, 0.020705312490463257},
	{-0.08958882093429565, -0.0292942076921463, 0.029727233573794365},
	{-0.08019855618476868, -0.04522521793842316, 0.0346868671476841},
	{-0.05091847851872444, -0.052784282714128494, 0.03316209465265274},
	{-0.027258513495326042, -0.051615241914987564, 0.04688679054379463},
	{-0.0580756776034832, 6.801447852922138e-06, 0.05650037154555321},
	{-0.047557104378938675, -0.03394269943237305, 0.0535212866961956},
}

// Unit outward normals in the device frame, same indexing as devicePositions.
var deviceNormals = [ClusterSize][3]float64{
	{0.6565292477607727, 0.08003702759742737, 0.7500423192977905},
	{1, 0, 0},
	{0.9510334134101868, 0.1922958791255951, -0.24198685586452484},
	{0.8633409738540649, 0.26114100217819214, -0.43179601430892944},
	{0.5620832443237305, 0.8270804286003113, -0.0007020003395155072},
	{0.5567418932914734, 0.8186168074607849, -0.1410849690437317},
	{0.12751400470733643, 0.36096900701522827, 0.9238190054893494},
	{0.19732795655727386, 0.7212077975273132, 0.6640188097953796},
	{0.19732792675495148, -0.7205037474632263, 0.6647827625274658},
	{0.4602000117301941, 0.003066000062972307, 0.8878099918365479},
	{0.025263000279664993, -0.7483329772949219, 0.6628419756889343},
	{0.5567419528961182, -0.8187658786773682, -0.14021699130535126},
	{0.5620829463005066, -0.8270809054374695, 0.00017499997920822352},
	{0.8633410930633545, -0.26159802079200745, -0.4315190613269806},
	{0.9510335326194763, -0.19255191087722778, -0.24178287386894226},
	{0.6565289497375488, -0.07924199104309082, 0.7501268982887268},
	{-0.19732795655727386, 0.7212077975273132, 0.6640188097953796},
	{-0.12751400470733643, 0.36096900701522827, 0.9238190054893494},
	{-0.5567418932914734, 0.8186168074607849, -0.1410849690437317},
	{-0.5620832443237305, 0.8270804286003113, -0.0007020003395155072},
	{-0.8633409738540649, 0.26114100217819214, -0.43179601430892944},
	{-0.9510334134101868, 0.1922958791255951, -0.24198685586452484},
	{-1, 0, 0},
	{-0.6565292477607727, 0.08003702759742737, 0.7500423192977905},
	{-0.6565289497375488, -0.07924199104309082, 0.7501268982887268},
	{-0.9510335326194763, -0.19255191087722778, -0.24178287386894226},
	{-0.8633410930633545, -0.26159802079200745, -0.4315190613269806},
	{-0.5620829463005066, -0.8270809054374695, 0.00017499997920822352},
	{-0.5567419528961182, -0.8187658786773682, -0.14021699130535126},
	{-0.025263000279664993, -0.7483329772949219, 0.6628419756889343},
	{-0.4602000117301941, 0.003066000062972307, 0.8878099918365479},
	{-0.19732792675495148, -0.7205037474632263, 0.6647827625274658},
}
