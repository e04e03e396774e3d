package health

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Personalized Health Guide</title>
<style>
body { font-family: Arial, sans-serif; background: #f7f7f7; max-width: 800px; margin: 20px auto; }
label { display: inline-block; width: 160px; }
.field { margin: 4px 0; }
.invalid { color: #b00020; font-size: 0.9em; margin-left: 8px; }
.alert { border: 1px solid #b00020; background: #fdecea; padding: 10px; margin: 10px 0; }
pre { background: #fff; border: 1px solid #ccc; padding: 10px; white-space: pre-wrap; font-family: "Courier New", monospace; }
</style>
</head>
<body>
<h1>Personalized Health Guide</h1>
{{if .Alert}}<div class="alert" role="alert"><strong>Input Error</strong>: {{.Alert}}</div>{{end}}
<form method="post" action="/report">
<div class="field"><label for="age">Age (years, 18+):</label><input id="age" name="age" value="{{.Form.Age}}">{{with index .Fields "age"}}<span class="invalid">{{.}}</span>{{end}}</div>
<div class="field"><label for="height_cm">Height (cm):</label><input id="height_cm" name="height_cm" value="{{.Form.HeightCM}}">{{with index .Fields "height_cm"}}<span class="invalid">{{.}}</span>{{end}}</div>
<div class="field"><label for="weight_kg">Weight (kg):</label><input id="weight_kg" name="weight_kg" value="{{.Form.WeightKG}}">{{with index .Fields "weight_kg"}}<span class="invalid">{{.}}</span>{{end}}</div>
<div class="field"><label for="sleep_hours">Sleep Hours (avg):</label><input id="sleep_hours" name="sleep_hours" value="{{.Form.SleepHours}}">{{with index .Fields "sleep_hours"}}<span class="invalid">{{.}}</span>{{end}}</div>
<div class="field"><label for="activity_level">Activity Level:</label><select id="activity_level" name="activity_level">
{{- range .Activities}}<option{{if eq (print .) $.Form.ActivityLevel}} selected{{end}}>{{.}}</option>{{end -}}
</select>{{with index .Fields "activity_level"}}<span class="invalid">{{.}}</span>{{end}}</div>
<div class="field"><label for="smoking_status">Smoking Status:</label><select id="smoking_status" name="smoking_status">
{{- range .Smoking}}<option{{if eq (print .) $.Form.SmokingStatus}} selected{{end}}>{{.}}</option>{{end -}}
</select>{{with index .Fields "smoking_status"}}<span class="invalid">{{.}}</span>{{end}}</div>
<input type="hidden" name="previous_report" value="{{.Report}}">
<button type="submit">Generate Recommendations</button>
</form>
{{if .Report}}<pre id="report">{{.Report}}</pre>{{end}}
</body>
</html>
`
